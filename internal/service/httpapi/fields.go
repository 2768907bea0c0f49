package httpapi

import "encoding/json"

// OptString различает отсутствующее поле, явный null и строковое значение.
// Частичное обновление перекрывает только присланные поля, поэтому
// «поле не пришло» и «поле пришло как null» — разные случаи.
type OptString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON вызывается только для присутствующих в теле полей.
func (o *OptString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// OptInt — целочисленный аналог OptString. Строгий разбор: дробные
// значения и строки отклоняются ещё на этапе декодирования тела.
type OptInt struct {
	Set   bool
	Value *int64
}

func (o *OptInt) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	o.Value = &n
	return nil
}

// OptFloat — числовой аналог OptString для цен и скидок.
type OptFloat struct {
	Set   bool
	Value *float64
}

func (o *OptFloat) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	o.Value = &f
	return nil
}
