package controller

import "github.com/labstack/echo/v4"

type PlantController interface {
	ListTypes(c echo.Context) error
	GetType(c echo.Context) error
	CreateType(c echo.Context) error
	ListParts(c echo.Context) error
	GetPart(c echo.Context) error
	CreatePart(c echo.Context) error
}

type IndustryController interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Create(c echo.Context) error
	ListSub(c echo.Context) error
	GetSub(c echo.Context) error
	CreateSub(c echo.Context) error
}

type ProductController interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Search(c echo.Context) error
	Create(c echo.Context) error
}

type ResearchController interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	ListByPlantType(c echo.Context) error
	ListByPlantPart(c echo.Context) error
	ListByIndustry(c echo.Context) error
	Search(c echo.Context) error
	Create(c echo.Context) error
	Import(c echo.Context) error
}

type StatsController interface {
	Stats(c echo.Context) error
}
