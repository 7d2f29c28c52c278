package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/bson"
)

// ValueKind es la etiqueta de un valor recibido en un PATCH.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindString
	KindInt
	KindBool
)

func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	}
	return fmt.Sprintf("ValueKind(%d)", int(k))
}

// CampoID es el identificador público; no se puede modificar.
const CampoID = "id"

// CamposCliente lista los campos modificables y el tipo que exige cada uno.
var CamposCliente = map[string]ValueKind{
	"nombre":   KindString,
	"apellido": KindString,
	"email":    KindString,
	"telefono": KindString,
	"empresa":  KindString,
	"puesto":   KindString,
	"estado":   KindInt,
}

// PatchValue es un valor JSON escalar con su tipo explícito.
type PatchValue struct {
	Kind ValueKind
	Str  string
	Int  int64
	Bool bool
}

func StringValue(s string) PatchValue { return PatchValue{Kind: KindString, Str: s} }
func IntValue(n int64) PatchValue     { return PatchValue{Kind: KindInt, Int: n} }
func BoolValue(b bool) PatchValue     { return PatchValue{Kind: KindBool, Bool: b} }
func NullValue() PatchValue           { return PatchValue{Kind: KindNull} }

// UnmarshalJSON acepta cadenas, enteros, booleanos y null. Un decimal sin parte
// fraccionaria (1.0) cuenta como entero. Otros decimales, objetos y arreglos se
// rechazan con ErrValorNoSoportado.
func (v *PatchValue) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	switch val := raw.(type) {
	case nil:
		*v = NullValue()
	case string:
		*v = StringValue(val)
	case bool:
		*v = BoolValue(val)
	case json.Number:
		n, err := entero(val)
		if err != nil {
			return err
		}
		*v = IntValue(n)
	default:
		return fmt.Errorf("%w: solo se admiten cadenas, enteros, booleanos o null", ErrValorNoSoportado)
	}
	return nil
}

// Entero es un entero JSON que también acepta decimales sin parte fraccionaria.
type Entero int64

func (e *Entero) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	num, ok := raw.(json.Number)
	if !ok {
		return fmt.Errorf("%w: se esperaba un número entero", ErrTipoInvalido)
	}
	n, err := entero(num)
	if err != nil {
		return err
	}
	*e = Entero(n)
	return nil
}

func entero(num json.Number) (int64, error) {
	if n, err := num.Int64(); err == nil {
		return n, nil
	}
	f, err := num.Float64()
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: el número %s no es entero", ErrValorNoSoportado, num.String())
	}
	return int64(f), nil
}

func (v PatchValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Value())
}

// Value devuelve el valor nativo de Go que se guarda en la base de datos.
func (v PatchValue) Value() any {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindInt:
		return v.Int
	case KindBool:
		return v.Bool
	}
	return nil
}

// ClientePatch es el cuerpo de PATCH: nombre de campo -> valor.
type ClientePatch map[string]PatchValue

// ToBSON arma el documento para $set. No valida; eso se hace antes con utils.ValidatePatch.
func (p ClientePatch) ToBSON() bson.M {
	set := bson.M{}
	for campo, valor := range p {
		set[campo] = valor.Value()
	}
	return set
}
