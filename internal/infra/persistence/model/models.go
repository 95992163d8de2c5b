// Package model holds the GORM table definitions.
package model

// All lists every table model in migration order.
func All() []any {
	return []any{
		&ParentModel{},
		&TeenModel{},
		&LocationSampleModel{},
		&GeofenceModel{},
		&AlertModel{},
		&AppUsageModel{},
		&AppControlModel{},
		&WebHistoryModel{},
		&ParentDeviceModel{},
	}
}
