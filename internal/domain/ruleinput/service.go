package ruleinput

import "context"

type RuleInputService interface {
	List(ctx context.Context, concept string) ([]RuleInputResponse, error)
	SeedDefaults(ctx context.Context) (SeedResponse, error)
}
