package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/openquorum/ballot-service/internal/handlers"
)

func RegisterPrivateRoutes(rg *gin.RouterGroup, ballots *handlers.BallotHandler, notifications *handlers.NotificationHandler) {
	{
		rg.POST("/ballots", ballots.CreateBallot)
		rg.GET("/ballots/:id", ballots.GetBallot)
		rg.PATCH("/ballots/:id", ballots.UpdateBallot)

		rg.POST("/ballots/:id/vote", ballots.CastVote)
		rg.GET("/ballots/:id/votes", ballots.GetBallotVotes)
		rg.PATCH("/ballots/:id/votes/:voterID", ballots.AdminSetVote)

		rg.GET("/notifications", notifications.GetNotifications)
		rg.POST("/notifications/:id/read", notifications.MarkRead)
	}
}

// RegisterCronRoutes are secret-guarded, not user-authenticated.
func RegisterCronRoutes(rg *gin.RouterGroup, cron *handlers.CronHandler) {
	rg.POST("/cron/ballots/tick", cron.Tick)
}
