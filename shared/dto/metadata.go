package dto

import (
	"consulta/shared/constant"
	"consulta/shared/model"
)

type Metadata struct {
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = model.CreatedAt.UTC().Format(constant.TimestampFormat)
	m.UpdatedAt = model.UpdatedAt.UTC().Format(constant.TimestampFormat)
}
