package models

// BlacklistEntry is one blocked sender. At most one entry per sender:
// a new block fully replaces the previous one. For permanent blocks
// blocked_until is ignored and may be NULL; for temporary blocks it is
// the sole determinant of active-block status (epoch milliseconds).
type BlacklistEntry struct {
	SenderID     int64  `gorm:"column:sender_id;primaryKey"`
	BlockedUntil *int64 `gorm:"column:blocked_until"`
	IsPermanent  bool   `gorm:"column:is_permanent;default:false"`
	BlockedAt    int64  `gorm:"column:blocked_at;not null"`
}

// TableName overrides the default GORM table name
func (BlacklistEntry) TableName() string {
	return "blacklist"
}

// ActiveAt reports whether the block is in force at the given time
// (epoch milliseconds). Expired temporary entries are inactive but may
// still be present until the next IsBlocked check removes them.
func (e *BlacklistEntry) ActiveAt(nowMs int64) bool {
	if e.IsPermanent {
		return true
	}
	return e.BlockedUntil != nil && *e.BlockedUntil > nowMs
}
