package middleware

import "github.com/gin-gonic/gin"

// actorKey is the key used to store the acting operator's identifier in the
// Gin context.
const actorKey = contextKey("actorID")

// defaultActor is recorded in audit fields when the caller did not identify
// itself.
const defaultActor = "api"

// ActorMiddleware captures the operator identifier supplied by the caller in
// the X-Actor-ID header. There is no authentication layer; the actor is audit
// metadata only.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := c.GetHeader("X-Actor-ID")
		if actor == "" {
			actor = defaultActor
		}
		c.Set(string(actorKey), actor)
		c.Next()
	}
}

// GetActorFromContext retrieves the acting operator's identifier from the Gin
// context.
func GetActorFromContext(c *gin.Context) string {
	actorVal, exists := c.Get(string(actorKey))
	if !exists {
		return defaultActor
	}
	actor, ok := actorVal.(string)
	if !ok || actor == "" {
		return defaultActor
	}
	return actor
}
