package validation

import (
	"fmt"
	"regexp"
	"strings"

	"uniwise/internal/models"
)

var walletIDRegex = regexp.MustCompile(fmt.Sprintf(`^[0-9]{%d}$`, WalletIDSize))

// IsCollegeEmail reports whether email belongs to the given college domain.
func IsCollegeEmail(email, domain string) bool {
	if email == "" {
		return false
	}
	return strings.HasSuffix(email, "@"+domain)
}

// IsValidWalletID reports whether id is a valid 15-digit wallet identifier.
func IsValidWalletID(id string) bool {
	return walletIDRegex.MatchString(id)
}

// UserRegistration validates a registration payload.
func (v *Validator) UserRegistration(input *models.CreateUserInput, emailDomain string) {
	v.Required("name", input.Name)
	v.MaxLength("name", input.Name, MaxNameLength)
	v.Required("email", input.Email)
	v.Check(IsCollegeEmail(input.Email, emailDomain), "email",
		"must be a valid college email ending with @"+emailDomain)
	v.Required("password", input.Password)
	v.MinLength("password", input.Password, MinPasswordLength)
	v.MaxLength("password", input.Password, MaxPasswordLength)
	v.Required("department", input.Department)
	v.Required("year", input.Year)
	v.Required("location", input.Location)
}

// Product validates a listing payload.
func (v *Validator) Product(input *models.CreateProductInput) {
	v.Required("name", input.Name)
	v.MaxLength("name", input.Name, MaxNameLength)
	v.In("category", input.Category,
		models.CategoryStationary,
		models.CategoryBooks,
		models.CategoryElectronics,
		models.CategoryProjectMaterials,
		models.CategoryOthers,
	)
	v.Required("description", input.Description)
	v.MaxLength("description", input.Description, MaxDescriptionLength)
	v.Check(input.Price >= 0, "price", "cannot be negative")
	v.Range("price", input.Price, 0, MaxPrice)
	v.In("condition", input.Condition,
		models.ConditionNew,
		models.ConditionLikeNew,
		models.ConditionSlightlyUsed,
		models.ConditionUsed,
		models.ConditionHeavilyUsed,
	)
	v.Required("location", input.Location)
	v.Required("images", input.Images)
	v.Check(len(input.Images) <= MaxImages, "images", "too many images")
}

// Review validates a review payload.
func (v *Validator) Review(input *models.CreateReviewInput) {
	v.Required("productId", input.ProductID)
	v.Range("rating", float64(input.Rating), models.MinRating, models.MaxRating)
	v.Required("comment", input.Comment)
	v.MaxLength("comment", input.Comment, MaxCommentLength)
}
