package models

// Cliente es el documento almacenado en la colección de clientes.
// El _id de MongoDB no se mapea: el identificador público es ID.
type Cliente struct {
	ID       string `json:"id" bson:"id"`
	Nombre   string `json:"nombre" bson:"nombre"`
	Apellido string `json:"apellido" bson:"apellido"`
	Email    string `json:"email" bson:"email"`
	Telefono string `json:"telefono" bson:"telefono"`
	Empresa  string `json:"empresa" bson:"empresa"`
	Puesto   string `json:"puesto" bson:"puesto"`
	Estado   int    `json:"estado" bson:"estado"`
}

// ClientePayload es el cuerpo de POST y PUT. El id del cuerpo se acepta pero se ignora.
// Los campos son punteros para que required signifique "presente": "" y 0 son válidos.
type ClientePayload struct {
	ID       *string `json:"id"`
	Nombre   *string `json:"nombre" binding:"required"`
	Apellido *string `json:"apellido" binding:"required"`
	Email    *string `json:"email" binding:"required"`
	Telefono *string `json:"telefono" binding:"required"`
	Empresa  *string `json:"empresa" binding:"required"`
	Puesto   *string `json:"puesto" binding:"required"`
	Estado   *Entero `json:"estado" binding:"required"`
}

// ToCliente construye el documento con el id indicado por el servidor.
func (p ClientePayload) ToCliente(id string) Cliente {
	cliente := Cliente{
		ID:       id,
		Nombre:   deref(p.Nombre),
		Apellido: deref(p.Apellido),
		Email:    deref(p.Email),
		Telefono: deref(p.Telefono),
		Empresa:  deref(p.Empresa),
		Puesto:   deref(p.Puesto),
	}
	if p.Estado != nil {
		cliente.Estado = int(*p.Estado)
	}
	return cliente
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
