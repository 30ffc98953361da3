package entity

import (
	"git.appkode.ru/pub/go/failure"
	"github.com/shopspring/decimal"
)

// PredictionRequest — одна строка признаков для модели. Создаётся только
// валидатором и живёт в пределах одного запроса.
type PredictionRequest struct {
	Location        string  `json:"location"`
	TotalSquareFeet float64 `json:"total_sqft"`
	Bathrooms       int     `json:"bath"`
	Bedrooms        int     `json:"bhk"`
}

type PredictionStatus string

const (
	// PredictionSucceeded — модель вернула оценку.
	PredictionSucceeded PredictionStatus = "succeeded"
	// PredictionRejected — ошибка во входных данных пользователя.
	PredictionRejected PredictionStatus = "rejected"
	// PredictionUnavailable — модель не загружена.
	PredictionUnavailable PredictionStatus = "unavailable"
	// PredictionFailed — сбой при инференсе.
	PredictionFailed PredictionStatus = "failed"
)

func (s PredictionStatus) String() string {
	return string(s)
}

// PredictionResult — размеченное объединение: при Status == PredictionSucceeded
// заполнена Estimate, иначе Code и Message.
type PredictionResult struct {
	Status   PredictionStatus
	Estimate Estimate
	Code     failure.ErrorCode
	Message  string
}

func (r PredictionResult) OK() bool {
	return r.Status == PredictionSucceeded
}

// Text — то, что показывается пользователю: цена или сообщение.
func (r PredictionResult) Text() string {
	if r.OK() {
		return r.Estimate.Display
	}
	return r.Message
}

// Estimate — оценка в лакхах, округлённая для отображения.
type Estimate struct {
	Lakhs   decimal.Decimal
	Rupees  decimal.Decimal
	Unit    string
	Display string
}
