package response

import "shareit/internal/usecase/readmodel"

type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func FromUser(u readmodel.UserRM) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

func FromUsers(us []readmodel.UserRM) []UserResponse {
	res := make([]UserResponse, len(us))
	for i, u := range us {
		res[i] = FromUser(u)
	}
	return res
}
