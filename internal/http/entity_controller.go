package http

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mrlokans/bookexchange/internal/auth"
)

// entityController holds what every record controller needs.
type entityController struct {
	uow    UnitOfWork
	tokens EntityTokenIssuer
	logger logrus.FieldLogger
}

// respondCreatedWithToken sends 201 with the new record under entity and a
// token minted for it under tokenKey.
func (ec *entityController) respondCreatedWithToken(c *gin.Context, entity, tokenKey string, kind auth.Kind, id uint, record any) {
	token, err := ec.tokens.IssueEntityToken(kind, id)
	if err != nil {
		respondInternalError(c, ec.logger, err, "issue "+entity+" token")
		return
	}
	respondCreated(c, gin.H{entity: record, tokenKey: token})
}
