// Package server holds the gin response helpers used at the HTTP boundary.
//
// Handlers report failures with RespondWithError, which maps application
// errors to their status and JSON body and hides everything else behind a
// bare 500:
//
//	id, err := codec.Mint(c.Param("type"), nil)
//	if err != nil {
//	    server.RespondWithError(c, err)
//	    return
//	}
//	server.RespondCreated(c, gin.H{"id": id})
//
// Route registration is left to the embedding service.
package server
