package dto

import (
	"consulta/internal/domains/consultant/model"
	"consulta/shared"
	gDto "consulta/shared/dto"
)

type ConsultantResponse struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Email                string `json:"email"`
	DailyCapacityMinutes int    `json:"daily_capacity_minutes"`
	gDto.Metadata
}

func (r *ConsultantResponse) FromModel(model model.Consultant) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.DailyCapacityMinutes = model.DailyCapacityMinutes
	r.Metadata.FromModel(model.Metadata)
}

type GetConsultantsResponse struct {
	Consultants []ConsultantResponse `json:"consultants"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetConsultantsResponse) FromModels(models []model.Consultant, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Consultants = make([]ConsultantResponse, len(models))
	for i, mod := range models {
		r.Consultants[i].FromModel(mod)
	}
}
