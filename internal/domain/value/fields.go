package value

// Имена полей формы, как их отправляет страница.
const (
	FieldLocation = "location"
	FieldBHK      = "bhk"
	FieldBath     = "bath"
	FieldSqft     = "sqft"
)

// FormFields — все поля формы оценки в порядке отображения.
var FormFields = []string{FieldLocation, FieldBHK, FieldBath, FieldSqft} //nolint:gochecknoglobals

// RawFields — сырые строковые значения формы до парсинга и проверки.
type RawFields map[string]string

func (f RawFields) Get(name string) string {
	return f[name]
}
