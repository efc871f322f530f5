package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo marketplace data: a handful of active campaigns, a set
// of creators (some without a connected payout account) and pending
// submissions against each campaign. Intended for local development only.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	campaignIDs := make([]string, 0, 5)
	for i := 1; i <= 5; i++ {
		id := uuid.NewString()
		name := fmt.Sprintf("Campaign %d", i)
		budgetPool := "1000.00"
		rpm := fmt.Sprintf("%d.00", 5+i*5) // 10.00 .. 30.00 per 1000 views
		_, err := pool.Exec(ctx, `INSERT INTO campaigns
    (id, name, budget_pool, committed, rpm, status, created_at, updated_at)
VALUES ($1,$2,$3,0,$4,'active',now(),now()) ON CONFLICT DO NOTHING`,
			id, name, budgetPool, rpm)
		if err != nil {
			return err
		}
		campaignIDs = append(campaignIDs, id)
	}

	creatorIDs := make([]string, 0, 10)
	for i := 1; i <= 10; i++ {
		id := uuid.NewString()
		name := fmt.Sprintf("creator-%d", i)
		// every third creator has not connected a payout account yet
		var account *string
		if i%3 != 0 {
			acc := fmt.Sprintf("acct_%s", uuid.NewString()[:8])
			account = &acc
		}
		_, err := pool.Exec(ctx, `INSERT INTO creators
    (id, name, payout_account, created_at, updated_at)
VALUES ($1,$2,$3,now(),now()) ON CONFLICT DO NOTHING`,
			id, name, account)
		if err != nil {
			return err
		}
		creatorIDs = append(creatorIDs, id)
	}

	for _, campaignID := range campaignIDs {
		for j := 0; j < 8; j++ {
			creatorID := creatorIDs[r.Intn(len(creatorIDs))]
			videoURL := fmt.Sprintf("https://example.com/clips/%s.mp4", uuid.NewString())
			views := int64(r.Intn(20000))
			_, err := pool.Exec(ctx, `INSERT INTO submissions
    (id, campaign_id, creator_id, video_url, views, state, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,'pending',now(),now()) ON CONFLICT DO NOTHING`,
				uuid.NewString(), campaignID, creatorID, videoURL, views)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
