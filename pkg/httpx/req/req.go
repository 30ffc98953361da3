package req

import (
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"house_price/pkg/errcodes"
)

// Ограничение на тело запроса: формы и JSON здесь крошечные.
const maxBodyBytes = 1 << 16

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary         //nolint:gochecknoglobals // skip
	validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip
)

func Read(r *http.Request, dest any) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)

	if err := json.NewDecoder(body).Decode(dest); err != nil {
		return failure.NewInvalidArgumentError(
			fmt.Errorf("json.Decode: %w", err).Error(),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription("Invalid JSON"),
		)
	}

	if err := validate.StructCtx(r.Context(), dest); err != nil {
		return failure.NewInvalidArgumentError(
			"validation error",
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(err.Error()),
		)
	}

	return nil
}

// ReadForm разбирает urlencoded/multipart форму и возвращает значения
// запрошенных полей. Отсутствующее поле даёт пустую строку.
func ReadForm(r *http.Request, fields ...string) (map[string]string, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)

	if err := r.ParseForm(); err != nil {
		return nil, failure.NewInvalidArgumentError(
			fmt.Errorf("r.ParseForm: %w", err).Error(),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription("Invalid form"),
		)
	}

	values := make(map[string]string, len(fields))

	for _, field := range fields {
		values[field] = r.PostForm.Get(field)
	}

	return values, nil
}
