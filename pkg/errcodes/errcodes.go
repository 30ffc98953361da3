package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	Forbidden           failure.ErrorCode = "Forbidden"

	// Оценка стоимости
	MalformedInput    failure.ErrorCode = "MalformedInput"    // Поле формы не парсится в нужный тип
	ModelUnavailable  failure.ErrorCode = "ModelUnavailable"  // Модель не загрузилась на старте
	PredictionFailure failure.ErrorCode = "PredictionFailure" // Модель упала на инференсе

	// Загрузка артефактов
	DatasetUnavailable failure.ErrorCode = "DatasetUnavailable"
	InvalidModel       failure.ErrorCode = "InvalidModel"
)
