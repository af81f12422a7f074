package models

// All lists every model handled by AutoMigrate, in dependency order.
func All() []any {
	return []any{
		&Location{},
		&StaffMember{},
		&StaffLocation{},
		&User{},
		&Client{},
		&ServiceCategory{},
		&Service{},
		&Product{},
		&ProductLocation{},
		&StockMovement{},
		&Appointment{},
		&AppointmentStatusEntry{},
		&Transaction{},
		&TransactionItem{},
		&AuditLog{},
	}
}
