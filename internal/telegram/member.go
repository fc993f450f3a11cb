package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MemberStatus is the closed set of membership states the bot consults.
// The wire format is an open string; mapping it once here keeps every
// consumer on an exhaustive switch.
type MemberStatus int

const (
	StatusUnknown MemberStatus = iota
	StatusOwner
	StatusAdministrator
	StatusMember
	StatusRestricted
	StatusLeft
	StatusBanned
)

func (s MemberStatus) String() string {
	switch s {
	case StatusOwner:
		return "owner"
	case StatusAdministrator:
		return "administrator"
	case StatusMember:
		return "member"
	case StatusRestricted:
		return "restricted"
	case StatusLeft:
		return "left"
	case StatusBanned:
		return "banned"
	default:
		return "unknown"
	}
}

// StatusOf maps a chat member record onto the closed status set.
func StatusOf(m tgbotapi.ChatMember) MemberStatus {
	switch m.Status {
	case "creator":
		return StatusOwner
	case "administrator":
		return StatusAdministrator
	case "member":
		return StatusMember
	case "restricted":
		return StatusRestricted
	case "left":
		return StatusLeft
	case "kicked":
		return StatusBanned
	default:
		return StatusUnknown
	}
}

// IsPrivileged reports whether the member outranks the bot's mutations.
func IsPrivileged(m tgbotapi.ChatMember) bool {
	switch StatusOf(m) {
	case StatusOwner, StatusAdministrator:
		return true
	default:
		return false
	}
}

// IsAbsent reports whether the member is not currently in the chat.
func IsAbsent(m tgbotapi.ChatMember) bool {
	switch StatusOf(m) {
	case StatusLeft, StatusBanned:
		return true
	default:
		return false
	}
}

// IsRestricted reports whether the member currently has any ordinary
// content-posting right revoked. The content flags are only meaningful
// on a restricted membership record; every other status counts as
// unrestricted. A member is unrestricted only if all four content
// rights are simultaneously granted.
func IsRestricted(m tgbotapi.ChatMember) bool {
	if StatusOf(m) != StatusRestricted {
		return false
	}
	return !(m.CanSendMessages &&
		m.CanSendMediaMessages &&
		m.CanSendOtherMessages &&
		m.CanAddWebPagePreviews)
}

// Capability is a single administrator permission the bot consults.
type Capability int

const (
	CapRestrictMembers Capability = iota
	CapPromoteMembers
	CapPinMessages
)

// Name is the platform-style constant used in denial messages.
func (c Capability) Name() string {
	switch c {
	case CapRestrictMembers:
		return "CAN_RESTRICT_MEMBERS"
	case CapPromoteMembers:
		return "CAN_PROMOTE_MEMBERS"
	case CapPinMessages:
		return "CAN_PIN_MESSAGES"
	default:
		return "UNKNOWN"
	}
}

// HasCapability reports whether a member may perform the given action.
// The chat owner always passes; an administrator passes only with the
// specific flag set; everyone else fails.
func HasCapability(m tgbotapi.ChatMember, c Capability) bool {
	switch StatusOf(m) {
	case StatusOwner:
		return true
	case StatusAdministrator:
		switch c {
		case CapRestrictMembers:
			return m.CanRestrictMembers
		case CapPromoteMembers:
			return m.CanPromoteMembers
		case CapPinMessages:
			return m.CanPinMessages
		}
		return false
	default:
		return false
	}
}
