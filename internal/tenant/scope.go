package tenant

import "gorm.io/gorm"

// Scope restricts a query to one business (the tenant root).
func Scope(businessID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("business_id = ?", businessID)
	}
}
