package models

var ModelTypeRegistry = map[string]interface{}{
	"Invoice": Invoice{},
	"Payment": Payment{},
	"Tenant":  Tenant{},
	"Unit":    Unit{},
}
