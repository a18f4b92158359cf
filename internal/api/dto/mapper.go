package dto

import (
	"github.com/oficinapro/workshop-api/internal/domain"
	"github.com/oficinapro/workshop-api/pkg/utils"
)

// FromUser converts a user to its response shape, dropping the password
// hash field entirely rather than relying on json:"-".
func FromUser(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		TenantID:  user.HomeTenantID(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		Active:    user.Active,
		CreatedAt: user.CreatedAt,
	}
}

// ToWorkOrderFilter parses the listing query. Invalid dates are ignored
// rather than rejected; the filter is best-effort narrowing.
func (q *ListWorkOrdersQuery) ToWorkOrderFilter() domain.WorkOrderFilter {
	filter := domain.WorkOrderFilter{
		ClientID: q.ClientID,
		Search:   q.Search,
		Page:     q.Page,
		PageSize: q.PageSize,
	}

	if q.Status != "" && domain.IsValidWorkOrderStatus(q.Status) {
		filter.Statuses = []domain.WorkOrderStatus{domain.WorkOrderStatus(q.Status)}
	}
	if q.From != "" {
		if t, err := utils.ParseUserTime(q.From, false); err == nil {
			filter.From = &t
		}
	}
	if q.To != "" {
		if t, err := utils.ParseUserTime(q.To, true); err == nil {
			filter.To = &t
		}
	}

	return filter
}
