package entity

import (
	"strings"
	"time"
)

// FormatoData formato de data usado em toda a API do backend (ISO, sem hora).
const FormatoData = "2006-01-02"

// Data representa uma data de calendário (sem componente de hora), serializada no
// JSON como "YYYY-MM-DD". O valor zero significa "ausente ou inválida": um campo
// null, vazio ou malformado na resposta do backend vira o valor zero em vez de
// derrubar a decodificação do payload inteiro.
type Data struct {
	t time.Time
}

// NovaData constrói uma Data a partir de ano, mês e dia.
func NovaData(ano int, mes time.Month, dia int) Data {
	return Data{t: time.Date(ano, mes, dia, 0, 0, 0, 0, time.UTC)}
}

// DataDe trunca um instante para a data civil correspondente em UTC.
func DataDe(t time.Time) Data {
	u := t.UTC()
	return NovaData(u.Year(), u.Month(), u.Day())
}

// ParseData interpreta uma string "YYYY-MM-DD". Entrada vazia ou malformada
// devolve a Data zero e um erro.
func ParseData(s string) (Data, error) {
	t, err := time.Parse(FormatoData, strings.TrimSpace(s))
	if err != nil {
		return Data{}, err
	}
	return Data{t: t}, nil
}

// Valida informa se a data está presente e bem formada.
func (d Data) Valida() bool { return !d.t.IsZero() }

// Ano, Mes e Dia expõem os componentes da data civil.
func (d Data) Ano() int        { return d.t.Year() }
func (d Data) Mes() time.Month { return d.t.Month() }
func (d Data) Dia() int        { return d.t.Day() }

// Antes informa se d é estritamente anterior a outra.
func (d Data) Antes(outra Data) bool { return d.t.Before(outra.t) }

// String devolve "YYYY-MM-DD", ou vazio para a Data zero.
func (d Data) String() string {
	if !d.Valida() {
		return ""
	}
	return d.t.Format(FormatoData)
}

// MarshalJSON serializa como "YYYY-MM-DD"; a Data zero vira null.
func (d Data) MarshalJSON() ([]byte, error) {
	if !d.Valida() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.t.Format(FormatoData) + `"`), nil
}

// UnmarshalJSON aceita "YYYY-MM-DD", null ou string vazia. Valores malformados
// resultam na Data zero, sem erro: a linha é exibida com placeholder em vez de
// impedir a renderização da lista inteira.
func (d *Data) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		*d = Data{}
		return nil
	}
	parsed, err := ParseData(s)
	if err != nil {
		*d = Data{}
		return nil
	}
	*d = parsed
	return nil
}
