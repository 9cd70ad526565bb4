package model

import "consulta/shared/model"

const (
	TableName  = "consultants"
	EntityName = "consultant"

	FieldID                   = "id"
	FieldName                 = "name"
	FieldEmail                = "email"
	FieldDailyCapacityMinutes = "daily_capacity_minutes"
)

type Consultant struct {
	ID                   string `db:"id"`
	Name                 string `db:"name"`
	Email                string `db:"email"`
	DailyCapacityMinutes int    `db:"daily_capacity_minutes"`
	model.Metadata
}
