package game

import "errors"

// Business-rule refusals. Handlers translate these to 4xx responses;
// gorm.ErrRecordNotFound passes through for missing records.
var (
	ErrInventoryFull        = errors.New("no free active item slots")
	ErrItemNotOwned         = errors.New("item is not in the user's inventory")
	ErrAlreadyOwned         = errors.New("item is already in the user's inventory")
	ErrNotEnoughGold        = errors.New("not enough gold")
	ErrClassRestricted      = errors.New("item is restricted to another class")
	ErrAlreadyInTeam        = errors.New("user already belongs to a team")
	ErrNotInTeam            = errors.New("user does not belong to a team")
	ErrNotTeamOwner         = errors.New("only the team owner can do this")
	ErrOwnerCannotBeRemoved = errors.New("the team owner cannot be removed")
	ErrOwnerMustDisband     = errors.New("the owner cannot leave while the team has other members")
)
