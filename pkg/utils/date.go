package utils

// As datas da API trafegam no formato yyyy-mm-dd, sem hora nem fuso

import "time"

const apiDateLayout = "2006-01-02"

// ParseDate interpreta uma data no formato da API. String vazia produz a
// data zero, não erro; o chamador decide se o campo é obrigatório
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		parsed, err := time.Parse(apiDateLayout, dateStr)
		if err != nil {
			return nil, err
		}

		date = parsed
	}

	return &date, nil
}
