package conversion

import (
	"github.com/ethereum/go-ethereum/common"
	"gitlab.com/TitanInd/swap/swap-gateway/internal/lib"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RolePauser Role = "pauser"
	RoleMiner  Role = "miner"
)

// AccessControl maps role tags to account membership sets. Sets are
// independent and may overlap. Not safe for concurrent use on its own,
// callers serialize through the authority mutex.
type AccessControl struct {
	members map[Role]lib.AddrSet
}

func NewAccessControl() *AccessControl {
	return &AccessControl{
		members: map[Role]lib.AddrSet{
			RoleAdmin:  lib.NewAddrSet(),
			RolePauser: lib.NewAddrSet(),
			RoleMiner:  lib.NewAddrSet(),
		},
	}
}

func (a *AccessControl) Grant(role Role, account common.Address) {
	a.members[role].Add(account)
}

func (a *AccessControl) Revoke(role Role, account common.Address) bool {
	return a.members[role].Remove(account)
}

func (a *AccessControl) HasRole(role Role, account common.Address) bool {
	return a.members[role].Contains(account)
}

func (a *AccessControl) Members(role Role) []common.Address {
	return a.members[role].ToSlice()
}
