package handlers

import (
	"errors"
	"log"
	"strconv"

	"uniwise/internal/services/admin"
	"uniwise/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	adminService admin.Service
}

func NewAdminHandler(adminService admin.Service) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

func (h *AdminHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.adminService.Users()
	if err != nil {
		log.Printf("Error fetching users: %v", err)
		return utils.InternalError(c, "Failed to fetch users")
	}
	return utils.Success(c, fiber.Map{"users": users})
}

func (h *AdminHandler) GetUserByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid user id")
	}

	user, err := h.adminService.UserByID(uint(id))
	if err != nil {
		if errors.Is(err, admin.ErrUserNotFound) {
			return utils.NotFound(c, "User not found")
		}
		log.Printf("Error fetching user %d: %v", id, err)
		return utils.InternalError(c, "Failed to fetch user")
	}
	return utils.Success(c, fiber.Map{"user": user})
}

// Blacklist bars a user from the platform. A reason is mandatory and is
// surfaced to the user at login.
func (h *AdminHandler) Blacklist(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid user id")
	}

	var input struct {
		Reason string `json:"reason"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	user, err := h.adminService.Blacklist(uint(id), input.Reason)
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrReasonRequired):
			return utils.BadRequest(c, "Blacklist reason is required")
		case errors.Is(err, admin.ErrUserNotFound):
			return utils.NotFound(c, "User not found")
		case errors.Is(err, admin.ErrCannotBlacklist):
			return utils.BadRequest(c, "Admin accounts cannot be blacklisted")
		default:
			log.Printf("Error blacklisting user %d: %v", id, err)
			return utils.InternalError(c, "Failed to blacklist user")
		}
	}

	return utils.Success(c, fiber.Map{
		"message": "User blacklisted",
		"user":    user,
	})
}

func (h *AdminHandler) Unblacklist(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid user id")
	}

	user, err := h.adminService.Unblacklist(uint(id))
	if err != nil {
		if errors.Is(err, admin.ErrUserNotFound) {
			return utils.NotFound(c, "User not found")
		}
		log.Printf("Error unblacklisting user %d: %v", id, err)
		return utils.InternalError(c, "Failed to unblacklist user")
	}

	return utils.Success(c, fiber.Map{
		"message": "User removed from blacklist",
		"user":    user,
	})
}

func (h *AdminHandler) ApproveVerification(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid user id")
	}

	user, err := h.adminService.ApproveVerification(uint(id))
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrUserNotFound):
			return utils.NotFound(c, "User not found")
		case errors.Is(err, admin.ErrNoPendingRequest):
			return utils.BadRequest(c, "User has no pending verification request")
		default:
			log.Printf("Error approving verification for user %d: %v", id, err)
			return utils.InternalError(c, "Failed to approve verification")
		}
	}

	return utils.Success(c, fiber.Map{
		"message": "Blockchain verification approved",
		"user":    user,
	})
}

func (h *AdminHandler) RejectVerification(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid user id")
	}

	var input struct {
		Reason string `json:"reason"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	user, err := h.adminService.RejectVerification(uint(id), input.Reason)
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrReasonRequired):
			return utils.BadRequest(c, "Rejection reason is required")
		case errors.Is(err, admin.ErrUserNotFound):
			return utils.NotFound(c, "User not found")
		case errors.Is(err, admin.ErrNoPendingRequest):
			return utils.BadRequest(c, "User has no pending verification request")
		default:
			log.Printf("Error rejecting verification for user %d: %v", id, err)
			return utils.InternalError(c, "Failed to reject verification")
		}
	}

	return utils.Success(c, fiber.Map{
		"message": "Blockchain verification rejected",
		"user":    user,
	})
}

func (h *AdminHandler) GetPendingVerifications(c *fiber.Ctx) error {
	users, err := h.adminService.PendingVerifications()
	if err != nil {
		log.Printf("Error fetching pending verifications: %v", err)
		return utils.InternalError(c, "Failed to fetch pending verifications")
	}
	return utils.Success(c, fiber.Map{"users": users})
}

func (h *AdminHandler) GetAllTransactions(c *fiber.Ctx) error {
	transactions, err := h.adminService.Transactions()
	if err != nil {
		log.Printf("Error fetching transactions: %v", err)
		return utils.InternalError(c, "Failed to fetch transactions")
	}
	return utils.Success(c, fiber.Map{"transactions": transactions})
}

func (h *AdminHandler) GetDashboard(c *fiber.Ctx) error {
	stats, err := h.adminService.Dashboard()
	if err != nil {
		log.Printf("Error building dashboard: %v", err)
		return utils.InternalError(c, "Failed to load dashboard")
	}
	return utils.Success(c, stats)
}
