package example

import (
	"embed"

	"github.com/soniclang/sonic"
)

//go:embed *.sonic
var sonicfs embed.FS

// Docs holds the lexed embedded sources; a lexical error in any of them
// fails at package initialisation.
var Docs = sonic.MustInclude(sonicfs)
