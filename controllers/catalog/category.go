package controllers

import (
	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/validators"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// GetCategories serves a single category via ?id= or a filtered list.
func GetCategories(c *fiber.Ctx) error {
	db := database.Database.Db

	if idStr := c.Query("id"); idStr != "" {
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.Error(c, fiber.StatusBadRequest, "Valid ID is required", "INVALID_ID")
		}

		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			return middleware.Error(c, fiber.StatusNotFound, "Category not found", "")
		}
		return middleware.JSON(c, fiber.StatusOK, category)
	}

	limit, offset := validators.ListWindow(c)

	query := db.Model(&models.Category{})
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ? OR description LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var categories []models.Category
	if err := query.Order("name asc").Limit(limit).Offset(offset).Find(&categories).Error; err != nil {
		return middleware.Internal(c, err)
	}
	return middleware.JSON(c, fiber.StatusOK, categories)
}

func CreateCategory(c *fiber.Ctx) error {
	db := database.Database.Db

	reqData, ok := c.Locals("validatedCategory").(*struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	})
	if !ok {
		return middleware.Error(c, fiber.StatusBadRequest, "Invalid request data", "INVALID_BODY")
	}

	// Exact, case-sensitive collision check; the unique index backstops races.
	var existing models.Category
	if err := db.Where("name = ?", reqData.Name).First(&existing).Error; err == nil {
		return middleware.Error(c, fiber.StatusBadRequest, "Category name already exists", "DUPLICATE_NAME")
	}

	category := models.Category{
		Name:        reqData.Name,
		Description: reqData.Description,
	}
	if err := db.Create(&category).Error; err != nil {
		return middleware.Internal(c, err)
	}

	return middleware.JSON(c, fiber.StatusCreated, category)
}

func UpdateCategory(c *fiber.Ctx) error {
	db := database.Database.Db
	id := c.Locals("id").(uint)

	reqData, ok := c.Locals("validatedCategoryUpdate").(*struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	})
	if !ok {
		return middleware.Error(c, fiber.StatusBadRequest, "Invalid request data", "INVALID_BODY")
	}

	var category models.Category
	if err := db.First(&category, id).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Category not found", "")
	}

	if reqData.Name != nil {
		var collision models.Category
		if err := db.Where("name = ? AND id != ?", *reqData.Name, id).First(&collision).Error; err == nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Category name already exists", "DUPLICATE_NAME")
		}
		category.Name = *reqData.Name
	}
	if reqData.Description != nil {
		category.Description = *reqData.Description
	}

	if err := db.Save(&category).Error; err != nil {
		return middleware.Internal(c, err)
	}
	return middleware.JSON(c, fiber.StatusOK, category)
}

func DeleteCategory(c *fiber.Ctx) error {
	db := database.Database.Db
	id := c.Locals("id").(uint)

	var category models.Category
	if err := db.First(&category, id).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Category not found", "")
	}

	if err := db.Delete(&category).Error; err != nil {
		return middleware.Internal(c, err)
	}

	return middleware.JSON(c, fiber.StatusOK, fiber.Map{
		"message": "Category deleted successfully",
		"deleted": category,
	})
}
