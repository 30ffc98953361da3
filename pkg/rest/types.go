// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

import "encoding/json"

// PredictionRequest Запрос на оценку стоимости
type PredictionRequest struct {
	// Location Район
	Location string `json:"location"`

	// BHK Количество спален
	BHK json.Number `json:"bhk"`

	// Bath Количество ванных комнат
	Bath json.Number `json:"bath"`

	// Sqft Общая площадь в квадратных футах
	Sqft json.Number `json:"sqft"`
}

// Prediction Оценка стоимости
type Prediction struct {
	// Price Оценка в лакхах, округлённая до сотых
	Price string `json:"price"`

	// Amount Оценка в рупиях
	Amount string `json:"amount"`

	// Unit Единица измерения Price
	Unit string `json:"unit"`

	// Display Строка для отображения в UI
	Display string `json:"display"`
}

// Locations Список известных районов
type Locations struct {
	Locations []string `json:"locations"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI)
	Message string `json:"message"`

	// SupportID Идентификатор запроса для обращения в поддержку
	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string
