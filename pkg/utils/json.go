package utils

import (
	"bytes"
	"encoding/json"
)

// PrettyJson serializa o valor com indentação para logs de depuração.
// Falhas de serialização produzem string vazia, nunca erro
func PrettyJson(in any) string {
	raw, ok := in.([]byte)
	if !ok {
		var err error
		raw, err = json.Marshal(in)
		if err != nil {
			return ""
		}
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "\t"); err != nil {
		return ""
	}

	return out.String()
}
