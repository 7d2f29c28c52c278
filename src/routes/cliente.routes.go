package routes

import (
	"github.com/gin-gonic/gin"

	"api_clientes/src/controllers"
)

func ClienteRoute(router *gin.Engine, ctl *controllers.ClienteController) {
	clienteGroup := router.Group("/clientes")
	{
		clienteGroup.GET("", ctl.GetClientes)
		clienteGroup.GET("/:id", ctl.GetCliente)
		clienteGroup.POST("", ctl.CreateCliente)
		clienteGroup.PUT("/:id", ctl.ReplaceCliente)
		clienteGroup.PATCH("/:id", ctl.UpdateCliente)
		clienteGroup.DELETE("/:id", ctl.DeleteCliente)
	}
}
