package dto

import (
	"resthouse/internal/domains/customer/model"
	"resthouse/shared"
	gDto "resthouse/shared/dto"
)

type CustomerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	gDto.Metadata
}

func (c *CustomerResponse) FromModel(model model.Customer) {
	c.ID = model.ID
	c.Name = model.Name
	c.Email = model.Email
	c.Phone = model.Phone
	c.Metadata.FromModel(model.Metadata)
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (g *GetCustomersResponse) FromModels(models []model.Customer, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Customers = make([]CustomerResponse, len(models))
	for i, mod := range models {
		g.Customers[i].FromModel(mod)
	}
}
