package property

import "context"

// UnitView is one unit on the dashboard. RentStatus is a derived display
// value, never authoritative: it mirrors the latest invoice for the unit
// and defaults to "unpaid" when no invoice exists. Status stays the
// source of truth, so a vacant unit renders vacant whatever its stale
// invoice history says.
type UnitView struct {
	UnitID     uint    `json:"unit_id"`
	Code       string  `json:"code"`
	Floor      string  `json:"floor"`
	Status     string  `json:"status"`
	RentAmount float64 `json:"rent_amount"`
	TenantName string  `json:"tenant_name,omitempty"`
	RentStatus string  `json:"rent_status"`
}

// FloorView groups the overview by floor, floors in ascending order.
type FloorView struct {
	Floor string     `json:"floor"`
	Units []UnitView `json:"units"`
}

// BuildingOverview projects the whole building: every unit joined to its
// current tenant and to the status of its most recent invoice by due
// date. Read-only; tolerates units with no invoices and an empty building.
func (s *Service) BuildingOverview(ctx context.Context) ([]FloorView, error) {
	var views []UnitView
	err := s.db.WithContext(ctx).
		Table("units u").
		Select(`u.id AS unit_id, u.code, u.floor, u.status, u.rent_amount,
			COALESCE(t.name, '') AS tenant_name,
			COALESCE((SELECT i.status FROM invoices i
				WHERE i.unit_id = u.id AND i.deleted_at IS NULL
				ORDER BY i.due_date DESC, i.id DESC LIMIT 1), 'unpaid') AS rent_status`).
		Joins("LEFT JOIN tenants t ON t.id = u.current_tenant_id AND t.deleted_at IS NULL").
		Where("u.deleted_at IS NULL").
		Order("u.floor, u.code").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}

	floors := make([]FloorView, 0)
	for _, view := range views {
		if n := len(floors); n == 0 || floors[n-1].Floor != view.Floor {
			floors = append(floors, FloorView{Floor: view.Floor, Units: make([]UnitView, 0, 1)})
		}
		last := &floors[len(floors)-1]
		last.Units = append(last.Units, view)
	}
	return floors, nil
}
