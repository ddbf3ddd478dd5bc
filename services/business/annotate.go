package business

import (
	"context"

	"localconnect/models"
	"localconnect/utils"
)

// annotateFollowState decorates businesses with follow state, follower count
// and owner summary using one batched query per concern.
func (s *DefaultDirectoryService) annotateFollowState(ctx context.Context, businesses []models.Business, caller *models.Caller) ([]models.BusinessView, error) {
	views := make([]models.BusinessView, len(businesses))
	if len(businesses) == 0 {
		return views, nil
	}

	ids := make([]string, len(businesses))
	ownerIDs := make([]string, 0, len(businesses))
	seenOwner := make(map[string]bool)
	for i, b := range businesses {
		ids[i] = b.ID
		if b.OwnerID != "" && !seenOwner[b.OwnerID] {
			seenOwner[b.OwnerID] = true
			ownerIDs = append(ownerIDs, b.OwnerID)
		}
	}

	followed := map[string]bool{}
	if caller != nil {
		var err error
		followed, err = s.Follows.FollowedAmong(ctx, caller.ID, ids)
		if err != nil {
			return nil, utils.Internal("failed to load follow state", err)
		}
	}
	counts, err := s.Follows.CountByBusiness(ctx, ids)
	if err != nil {
		return nil, utils.Internal("failed to count followers", err)
	}
	owners, err := s.Users.GetSummaries(ctx, ownerIDs)
	if err != nil {
		return nil, utils.Internal("failed to load owners", err)
	}

	for i, b := range businesses {
		views[i] = models.BusinessView{
			Business:       b,
			IsFollowed:     followed[b.ID],
			FollowersCount: counts[b.ID],
		}
		if owner, ok := owners[b.OwnerID]; ok {
			views[i].Owner = &owner
		}
	}
	return views, nil
}
