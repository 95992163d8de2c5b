package context

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// KeyParentID is the echo.Context key holding the authenticated parent.
const KeyParentID = "parent_id"

// SetParentID stores the authenticated parent on the echo.Context.
func SetParentID(c echo.Context, parentID uuid.UUID) {
	c.Set(KeyParentID, parentID)
}

// GetParentID returns the authenticated parent, if any.
func GetParentID(c echo.Context) (uuid.UUID, bool) {
	parentID, ok := c.Get(KeyParentID).(uuid.UUID)
	if !ok || parentID == uuid.Nil {
		return uuid.Nil, false
	}

	return parentID, true
}
