package validation

import (
	"testing"

	"uniwise/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestIsCollegeEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"college address", "amit@pccegoa.edu.in", true},
		{"gmail address", "amit@gmail.com", false},
		{"domain as prefix trick", "amit@pccegoa.edu.in.evil.com", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCollegeEmail(tt.email, "pccegoa.edu.in"))
		})
	}
}

func TestIsValidWalletID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"fifteen digits", "123456789012345", true},
		{"fourteen digits", "12345678901234", false},
		{"sixteen digits", "1234567890123456", false},
		{"non-numeric", "12345678901234a", false},
		{"hex address", "0xdeadbeefcafe12", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidWalletID(tt.id))
		})
	}
}

func TestUserRegistration(t *testing.T) {
	valid := func() *models.CreateUserInput {
		return &models.CreateUserInput{
			Name:       "Amit Naik",
			Email:      "amit@pccegoa.edu.in",
			Password:   "secret123",
			Department: "Computer",
			Year:       "TE",
			Location:   "Verna",
		}
	}

	t.Run("accepts a complete payload", func(t *testing.T) {
		v := New()
		v.UserRegistration(valid(), "pccegoa.edu.in")
		assert.True(t, v.Valid())
	})

	t.Run("rejects a non-college email", func(t *testing.T) {
		input := valid()
		input.Email = "amit@gmail.com"

		v := New()
		v.UserRegistration(input, "pccegoa.edu.in")
		assert.False(t, v.Valid())
		assert.Contains(t, v.Errors, "email")
	})

	t.Run("rejects a short password", func(t *testing.T) {
		input := valid()
		input.Password = "abc"

		v := New()
		v.UserRegistration(input, "pccegoa.edu.in")
		assert.False(t, v.Valid())
		assert.Contains(t, v.Errors, "password")
	})

	t.Run("requires profile fields", func(t *testing.T) {
		input := valid()
		input.Department = ""
		input.Location = ""

		v := New()
		v.UserRegistration(input, "pccegoa.edu.in")
		assert.Contains(t, v.Errors, "department")
		assert.Contains(t, v.Errors, "location")
	})
}

func TestProductValidation(t *testing.T) {
	valid := func() *models.CreateProductInput {
		return &models.CreateProductInput{
			Name:        "Drafter",
			Category:    models.CategoryStationary,
			Description: "Omega drafter, barely used",
			Price:       250,
			Condition:   models.ConditionSlightlyUsed,
			Location:    "Hostel A",
			Images:      []string{"uploads/drafter.jpg"},
		}
	}

	t.Run("accepts a complete listing", func(t *testing.T) {
		v := New()
		v.Product(valid())
		assert.True(t, v.Valid())
	})

	t.Run("rejects an unknown category", func(t *testing.T) {
		input := valid()
		input.Category = "Vehicles"

		v := New()
		v.Product(input)
		assert.Contains(t, v.Errors, "category")
	})

	t.Run("rejects an unknown condition", func(t *testing.T) {
		input := valid()
		input.Condition = "Broken"

		v := New()
		v.Product(input)
		assert.Contains(t, v.Errors, "condition")
	})

	t.Run("rejects a negative price", func(t *testing.T) {
		input := valid()
		input.Price = -10

		v := New()
		v.Product(input)
		assert.Contains(t, v.Errors, "price")
	})

	t.Run("requires at least one image", func(t *testing.T) {
		input := valid()
		input.Images = nil

		v := New()
		v.Product(input)
		assert.Contains(t, v.Errors, "images")
	})

	t.Run("caps the image count", func(t *testing.T) {
		input := valid()
		for i := 0; i < MaxImages+1; i++ {
			input.Images = append(input.Images, "uploads/extra.jpg")
		}

		v := New()
		v.Product(input)
		assert.Contains(t, v.Errors, "images")
	})
}

func TestReviewValidation(t *testing.T) {
	t.Run("rating bounds", func(t *testing.T) {
		for _, rating := range []int{1, 3, 5} {
			v := New()
			v.Review(&models.CreateReviewInput{ProductID: 10, Rating: rating, Comment: "fine"})
			assert.True(t, v.Valid(), "rating %d should pass", rating)
		}
		for _, rating := range []int{0, 6, -1} {
			v := New()
			v.Review(&models.CreateReviewInput{ProductID: 10, Rating: rating, Comment: "fine"})
			assert.Contains(t, v.Errors, "rating", "rating %d should fail", rating)
		}
	})

	t.Run("comment is required", func(t *testing.T) {
		v := New()
		v.Review(&models.CreateReviewInput{ProductID: 10, Rating: 4})
		assert.Contains(t, v.Errors, "comment")
	})
}
