package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cakeshop/cakes-service/internal/cake"
	"github.com/cakeshop/cakes-service/internal/cake/service"
	"github.com/cakeshop/cakes-service/pkg/metrics"
)

// RegisterCakeRoutes wires the five cake endpoints. Every success is 200;
// the handler performs no validation of its own and only maps the service's
// error taxonomy to status codes.
func RegisterCakeRoutes(r *gin.Engine, svc *service.Service) {
	r.GET("/cakes", func(c *gin.Context) {
		cakes, err := svc.ListAll(c.Request.Context())
		if err != nil {
			metrics.CakeOperations.WithLabelValues("list", "error").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while listing cakes", "error": err.Error()})
			return
		}
		metrics.CakeOperations.WithLabelValues("list", "ok").Inc()
		c.JSON(http.StatusOK, cakes)
	})

	r.POST("/cakes", func(c *gin.Context) {
		var data cake.Document
		if err := c.ShouldBindJSON(&data); err != nil {
			metrics.CakeOperations.WithLabelValues("add", "rejected").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"message": "Request body must be a JSON object"})
			return
		}
		id, err := svc.Add(c.Request.Context(), data)
		if err != nil {
			var ve *service.ValidationError
			if errors.As(err, &ve) {
				metrics.CakeOperations.WithLabelValues("add", "rejected").Inc()
				c.JSON(http.StatusBadRequest, gin.H{"message": ve.Message})
				return
			}
			metrics.CakeOperations.WithLabelValues("add", "error").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while adding the cake", "error": err.Error()})
			return
		}
		metrics.CakeOperations.WithLabelValues("add", "ok").Inc()
		c.JSON(http.StatusOK, gin.H{"message": "Cake added successfully", "id": id})
	})

	r.GET("/cakes/:id", func(c *gin.Context) {
		doc, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			metrics.CakeOperations.WithLabelValues("get", "not_found").Inc()
			c.JSON(http.StatusNotFound, gin.H{"message": "Cake not found"})
			return
		}
		metrics.CakeOperations.WithLabelValues("get", "ok").Inc()
		c.JSON(http.StatusOK, doc)
	})

	r.DELETE("/cakes/:id", func(c *gin.Context) {
		err := svc.Delete(c.Request.Context(), c.Param("id"))
		switch {
		case err == nil:
			metrics.CakeOperations.WithLabelValues("delete", "ok").Inc()
			c.JSON(http.StatusOK, gin.H{"message": "Cake deleted successfully"})
		case errors.Is(err, service.ErrNotFound):
			metrics.CakeOperations.WithLabelValues("delete", "not_found").Inc()
			c.JSON(http.StatusNotFound, gin.H{"message": "Cake not found"})
		default:
			metrics.CakeOperations.WithLabelValues("delete", "error").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while deleting the cake", "error": err.Error()})
		}
	})

	r.PUT("/cakes/:id", func(c *gin.Context) {
		var data cake.Document
		if err := c.ShouldBindJSON(&data); err != nil {
			metrics.CakeOperations.WithLabelValues("update", "rejected").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"message": "Request body must be a JSON object"})
			return
		}
		err := svc.Update(c.Request.Context(), c.Param("id"), data)
		switch {
		case err == nil:
			metrics.CakeOperations.WithLabelValues("update", "ok").Inc()
			c.JSON(http.StatusOK, gin.H{"message": "Cake updated successfully"})
		case errors.Is(err, service.ErrNotFound):
			metrics.CakeOperations.WithLabelValues("update", "not_found").Inc()
			c.JSON(http.StatusNotFound, gin.H{"message": "Cake not found"})
		default:
			metrics.CakeOperations.WithLabelValues("update", "error").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while updating the cake", "error": err.Error()})
		}
	})
}
