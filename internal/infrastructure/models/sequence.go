package models

// Sequence stores the last issued counter for an id prefix.
type Sequence struct {
	Name       string `gorm:"type:varchar(32);primaryKey"`
	LastIssued int64  `gorm:"not null;default:0"`
}

func (Sequence) TableName() string {
	return "id_sequences"
}

// All lists every model owned by the store, in migration order.
func All() []interface{} {
	return []interface{}{
		&Sequence{},
		&Customer{},
		&Merchant{},
		&Driver{},
		&Order{},
		&Transaction{},
		&Voucher{},
		&Complaint{},
		&Escalation{},
	}
}
