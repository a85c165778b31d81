package models_test

import (
	"strings"

	"github.com/pennyplan/backend/internal/models"
)

func (suite *TestSuiteStandard) TestCategoryTrimWhitespace() {
	name := "\t Whitespace galore!   "
	note := " Some more whitespace in the notes    "

	category := suite.createTestCategory(models.Category{
		Name: name,
		Note: note,
	})

	suite.Assert().Equal(strings.TrimSpace(name), category.Name)
	suite.Assert().Equal(strings.TrimSpace(note), category.Note)
}

func (suite *TestSuiteStandard) TestCategoryNameNotUnique() {
	_ = suite.createTestCategory(models.Category{Name: "Insurance"})

	err := models.DB.Create(&models.Category{Name: "Insurance"}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique)
}

func (suite *TestSuiteStandard) TestCategoryNameReusable() {
	category := suite.createTestCategory(models.Category{Name: "Streaming"})
	suite.Require().Nil(models.DB.Delete(&category).Error)

	_ = suite.createTestCategory(models.Category{Name: "Streaming"})
}

func (suite *TestSuiteStandard) TestCategorySelf() {
	suite.Assert().Equal("Category", models.Category{}.Self())
}

func (suite *TestSuiteStandard) TestModelTimeUTC() {
	category := suite.createTestCategory(models.Category{Name: "UTC"})

	var found models.Category
	suite.Require().Nil(models.DB.First(&found, category.ID).Error)

	suite.Assert().Equal("UTC", found.CreatedAt.Location().String())
	suite.Assert().Equal("UTC", found.UpdatedAt.Location().String())
}
