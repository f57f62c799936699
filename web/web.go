// Package web embute os templates HTML do painel e expõe o motor de views.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates/*.html
var arquivos embed.FS

// Engine cria o motor de templates a partir dos arquivos embutidos, de modo que
// binário e testes não dependam do diretório de trabalho.
func Engine() *html.Engine {
	sub, err := fs.Sub(arquivos, "templates")
	if err != nil {
		panic("templates embutidos ausentes: " + err.Error())
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}
