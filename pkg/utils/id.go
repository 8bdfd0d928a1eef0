package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID produz o identificador curto usado por negociações,
// configurações de taxa e critérios de premiação
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, 6)
}
