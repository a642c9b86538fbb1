package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"product-catalog-service/internal/dto"
	"product-catalog-service/internal/service"
	"product-catalog-service/pkg/errs"
	"product-catalog-service/pkg/response"
)

type Controller struct {
	service service.CatalogService
}

func CreateCatalogController(e *echo.Group, service service.CatalogService) {
	c := Controller{
		service: service,
	}
	e.GET("/products", c.GetProducts)
	e.GET("/products/:id", c.GetProductByID)
	e.POST("/products", c.AddProduct)
	e.PATCH("/products/:id", c.UpdateProduct)
	e.DELETE("/products/:id", c.DeleteProduct)
	e.GET("/comments/product/:productId", c.GetCommentsByProduct)
	e.POST("/comments", c.AddComment)
	e.DELETE("/comments/:id", c.DeleteComment)
}

func (c *Controller) GetProducts(e echo.Context) error {
	responsePayload, err := c.service.GetProducts(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, responsePayload)
}

func (c *Controller) GetProductByID(e echo.Context) error {
	id := e.Param("id")

	responsePayload, err := c.service.GetProductByID(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, responsePayload)
}

func (c *Controller) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AddProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	responsePayload, err := c.service.AddProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusCreated, responsePayload)
}

func (c *Controller) UpdateProduct(e echo.Context) error {
	id := e.Param("id")
	payload := dto.UpdateProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	responsePayload, err := c.service.UpdateProduct(e.Request().Context(), id, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, responsePayload)
}

func (c *Controller) DeleteProduct(e echo.Context) error {
	id := e.Param("id")

	err := c.service.DeleteProduct(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteMessageResponse(e, "Product deleted successfully")
}

func (c *Controller) GetCommentsByProduct(e echo.Context) error {
	productID := e.Param("productId")

	responsePayload, err := c.service.GetCommentsByProduct(e.Request().Context(), productID)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, responsePayload)
}

func (c *Controller) AddComment(e echo.Context) error {
	payload := dto.CommentRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AddComment").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	responsePayload, err := c.service.AddComment(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusCreated, responsePayload)
}

func (c *Controller) DeleteComment(e echo.Context) error {
	id := e.Param("id")

	err := c.service.DeleteComment(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteMessageResponse(e, "Comment deleted successfully")
}
