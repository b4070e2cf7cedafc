package mapper

import "catsgram-backend/internal/features/user/models"

// ToUserResponse maps User model to UserResponse DTO
func ToUserResponse(user *models.User) *models.UserResponse {
	return &models.UserResponse{
		ID:               user.ID,
		Email:            user.Email,
		Username:         user.Username,
		RegistrationDate: user.RegistrationDate,
	}
}

// ToUserResponses maps a slice, preserving order.
func ToUserResponses(users []*models.User) []models.UserResponse {
	out := make([]models.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *ToUserResponse(u))
	}
	return out
}
