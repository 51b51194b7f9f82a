package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

type CategoryHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCategoryHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CategoryHandler {
	return &CategoryHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// listCategories
//
//	@Summary	Категории по алфавиту
//	@Tags		categories
//	@Produce	json
//	@Success	200	{array}	categoryResponse
//	@Router		/categories [get]
func (c *CategoryHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.catalogUsecase.ListCategories(r.Context())
	if err != nil {
		writeErr(c.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCategoriesResponse(categories))
}

// getCategory
//
//	@Summary	Категория
//	@Tags		categories
//	@Produce	json
//	@Param		id	path		string	true	"ID категории"
//	@Success	200	{object}	categoryResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/categories/{id} [get]
func (c *CategoryHandler) getCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		writeErr(c.logger, w, r, err)
		return
	}

	category, err := c.catalogUsecase.GetCategory(r.Context(), id)
	if err != nil {
		writeErr(c.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCategoryResponse(category))
}

// createCategory
//
//	@Summary	Новая категория
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		category	body		categoryRequest	true	"Категория"
//	@Success	201			{object}	categoryResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/categories [post]
func (c *CategoryHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	var body categoryRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeErr(c.logger, w, r, err)
		return
	}

	category, err := c.catalogUsecase.CreateCategory(r.Context(), &usecase.CategoryInput{
		Name:        body.Name,
		Description: body.Description,
		ImageURL:    body.ImageURL,
	})
	if err != nil {
		writeErr(c.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toCategoryResponse(category))
}

// updateCategory
//
//	@Summary	Изменение категории
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id			path		string			true	"ID категории"
//	@Param		category	body		categoryRequest	true	"Категория"
//	@Success	200			{object}	categoryResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/categories/{id} [put]
func (c *CategoryHandler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		writeErr(c.logger, w, r, err)
		return
	}

	var body categoryRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeErr(c.logger, w, r, err)
		return
	}

	category, err := c.catalogUsecase.UpdateCategory(r.Context(), id, &usecase.CategoryInput{
		Name:        body.Name,
		Description: body.Description,
		ImageURL:    body.ImageURL,
	})
	if err != nil {
		writeErr(c.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCategoryResponse(category))
}

// deleteCategory
//
//	@Summary		Удаление категории
//	@Description	Товары категории остаются без категории
//	@Tags			categories
//	@Security		BearerAuth
//	@Param			id	path	string	true	"ID категории"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Router			/categories/{id} [delete]
func (c *CategoryHandler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		writeErr(c.logger, w, r, err)
		return
	}

	if err := c.catalogUsecase.DeleteCategory(r.Context(), id); err != nil {
		writeErr(c.logger, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
