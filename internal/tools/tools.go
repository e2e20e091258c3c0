// ABOUTME: Registers every tool pack with a registry.

package tools

import (
	"github.com/ghlkit/ghl-gateway/internal/packs"
	"github.com/ghlkit/ghl-gateway/internal/store"
	"github.com/ghlkit/ghl-gateway/internal/tenant"
)

// RegisterAll builds every pack and registers it with the registry.
// Registration fails only on duplicate tool names, which would be a
// programming error.
func RegisterAll(reg *packs.Registry, r *tenant.Resolver, s store.TenantStore) error {
	all := []*packs.Pack{
		AccountsPack(s),
		ContactsPack(r),
		CalendarsPack(r),
		ConversationsPack(r),
		OpportunitiesPack(r),
		PaymentsPack(r),
		LocationsPack(r),
		MarketingPack(r),
		AutomationPack(r),
		AIAgentsPack(r),
		ContentPack(r),
		MiscPack(r),
	}
	for _, pack := range all {
		if err := reg.RegisterPack(pack); err != nil {
			return err
		}
	}
	return nil
}
