package systems

import "github.com/yohamta/donburi/ecs"

// ApplyCommands flushes the tag changes queued by the movement passes.
func ApplyCommands(ecs *ecs.ECS) {
	if level := levelOf(ecs); level != nil {
		level.Flush()
	}
}
