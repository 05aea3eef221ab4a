package conversion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gitlab.com/TitanInd/swap/swap-gateway/internal/lib"
)

func TestAccessControlGrantRevoke(t *testing.T) {
	ac := NewAccessControl()
	account := lib.GetRandomAddr()

	require.False(t, ac.HasRole(RoleAdmin, account))

	ac.Grant(RoleAdmin, account)
	require.True(t, ac.HasRole(RoleAdmin, account))
	require.False(t, ac.HasRole(RolePauser, account))
	require.False(t, ac.HasRole(RoleMiner, account))

	require.True(t, ac.Revoke(RoleAdmin, account))
	require.False(t, ac.HasRole(RoleAdmin, account))
	require.False(t, ac.Revoke(RoleAdmin, account))
}

func TestAccessControlRolesMayOverlap(t *testing.T) {
	ac := NewAccessControl()
	account := lib.GetRandomAddr()

	ac.Grant(RoleAdmin, account)
	ac.Grant(RolePauser, account)
	ac.Grant(RoleMiner, account)

	require.True(t, ac.HasRole(RoleAdmin, account))
	require.True(t, ac.HasRole(RolePauser, account))
	require.True(t, ac.HasRole(RoleMiner, account))

	require.Len(t, ac.Members(RoleAdmin), 1)
}

func TestWindowValidate(t *testing.T) {
	rig := newTestRig(t)

	valid := Window{Start: rig.clock, End: rig.clock.Add(time.Hour)}
	require.NoError(t, valid.Validate())

	require.ErrorIs(t, Window{Start: rig.clock, End: rig.clock}.Validate(), ErrInvalidWindow)
	require.ErrorIs(t, Window{Start: rig.clock.Add(time.Hour), End: rig.clock}.Validate(), ErrInvalidWindow)

	require.True(t, valid.Contains(rig.clock))
	require.True(t, valid.Contains(rig.clock.Add(time.Minute)))
	require.False(t, valid.Contains(rig.clock.Add(time.Hour)))
	require.False(t, valid.Contains(rig.clock.Add(-time.Minute)))
}
