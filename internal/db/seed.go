package db

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"gtm-engine/internal/core/domain"
)

// Seed inserts a demo scenario into the gtm-engine database: one outbound
// channel at 1,000 leads/month with a 0.65/0.40/0.70/0.30 funnel, a $50k
// deal paid 70% upfront and per-meeting pricing at $200.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	inputs := domain.ModelInputs{
		Channels: []domain.Channel{
			{
				ID:           "outbound",
				Name:         "Outbound SDR",
				MonthlyLeads: 1000,
				ContactRate:  0.65,
				MeetingRate:  0.40,
				ShowUpRate:   0.70,
				CloseRate:    0.30,
				CostMethod:   domain.CostPerMeeting,
				Price:        200,
				Enabled:      true,
			},
		},
		Deal: domain.DealEconomics{
			AvgDealValue:     50000,
			UpfrontPct:       70,
			DeferredPct:      30,
			DeferredMonths:   12,
			GRR:              0.9,
			CommissionPolicy: domain.CommissionUpfrontOnly,
			GovCostPct:       5,
			ContractMonths:   12,
		},
		Team: domain.TeamStructure{
			Closer:  domain.RoleComp{Count: 4, BaseAnnual: 60000, VariableAnnual: 90000, CommissionPct: 20},
			Setter:  domain.RoleComp{Count: 2, BaseAnnual: 40000, VariableAnnual: 40000, CommissionPct: 3},
			Manager: domain.RoleComp{Count: 1, BaseAnnual: 120000, VariableAnnual: 60000, CommissionPct: 2},
			Bench:   domain.RoleComp{Count: 1, BaseAnnual: 45000},
		},
		OtherOpexMonthly: 25000,
	}

	raw, err := json.Marshal(inputs)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	_, err = pool.Exec(ctx, `INSERT INTO scenarios (id, name, inputs, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5) ON CONFLICT (name) DO NOTHING`,
		uuid.New(), "demo", raw, now, now)
	return err
}
