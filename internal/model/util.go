// Package model contain gorm model, request schema and response schema for the API
package model

// MigrateAble is array of model instance, use for migrating database
var MigrateAble []interface{}

func init() {
	MigrateAble = append(
		MigrateAble,
		&JobApplication{},
		&ContactMessage{},
	)
}

// TableName pins the table name used by existing databases
func (JobApplication) TableName() string {
	return "job_applications"
}

// TableName pins the table name used by existing databases
func (ContactMessage) TableName() string {
	return "contact_messages"
}
