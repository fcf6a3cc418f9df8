package cmd

import "go.uber.org/fx"

var Module = fx.Module("cli",
	fx.Provide(
		fx.Annotate(apply, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(clusters, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(describe, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(diff, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(exists, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(initCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(partitions, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(tables, fx.ResultTags(`group:"commands"`)),
	),
	fx.Invoke(Run),
)
