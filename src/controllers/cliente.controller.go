package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"api_clientes/src/logger"
	"api_clientes/src/models"
	"api_clientes/src/services"
	"api_clientes/src/utils"
)

const intentosInsercion = 3

// ClienteController atiende las rutas /clientes.
type ClienteController struct {
	repo services.ClienteRepository
	ids  utils.IDGenerator
	log  *logger.Logger
}

func NewClienteController(repo services.ClienteRepository, ids utils.IDGenerator, log *logger.Logger) *ClienteController {
	return &ClienteController{repo: repo, ids: ids, log: log}
}

func (ctl *ClienteController) logger(c *gin.Context) *logger.Logger {
	return logger.FromContextOr(c.Request.Context(), ctl.log)
}

// fail responde 404 si err es ErrClienteNotFound; cualquier otro error se registra y responde 500.
func (ctl *ClienteController) fail(c *gin.Context, err error, message string) {
	if errors.Is(err, models.ErrClienteNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": models.ErrClienteNotFound.Error()})
		return
	}
	ctl.logger(c).Error().Err(err).Str("id", c.Param("id")).Msg(message)
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}

// GetClientes devuelve hasta 100 clientes. ?page=N (1..10000) salta las páginas anteriores.
func (ctl *ClienteController) GetClientes(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || utils.ValidatePagina(page) != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "page debe ser un número entero del 1 al 10000",
			"example": "1",
		})
		return
	}

	clientes, err := ctl.repo.List(c.Request.Context(), page)
	if err != nil {
		ctl.fail(c, err, "error al obtener clientes")
		return
	}
	if clientes == nil {
		clientes = []models.Cliente{}
	}
	c.JSON(http.StatusOK, clientes)
}

func (ctl *ClienteController) GetCliente(c *gin.Context) {
	cliente, err := ctl.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		ctl.fail(c, err, "error al obtener cliente")
		return
	}
	c.JSON(http.StatusOK, cliente)
}

// CreateCliente asigna un id nuevo y persiste el cliente. Si el índice único
// rechaza el id se reintenta con otro.
func (ctl *ClienteController) CreateCliente(c *gin.Context) {
	var payload models.ClientePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var err error
	for range intentosInsercion {
		id := ctl.ids.Generate()
		err = ctl.repo.Insert(c.Request.Context(), payload.ToCliente(id))
		if err == nil {
			c.JSON(http.StatusCreated, gin.H{
				"message": "cliente agregado!",
				"id":      id,
			})
			return
		}
		if !errors.Is(err, models.ErrIDDuplicado) {
			break
		}
		ctl.logger(c).Warn().Str("id", id).Msg("id duplicado, se genera otro")
	}
	ctl.fail(c, err, "error al insertar cliente")
}

// ReplaceCliente sobrescribe el cliente completo; el id de la ruta se conserva.
func (ctl *ClienteController) ReplaceCliente(c *gin.Context) {
	id := c.Param("id")

	var payload models.ClientePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.repo.Replace(c.Request.Context(), id, payload.ToCliente(id)); err != nil {
		ctl.fail(c, err, "error al reemplazar cliente")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cliente remplazado/actualizado!"})
}

// UpdateCliente aplica un PATCH validado contra el esquema de Cliente.
func (ctl *ClienteController) UpdateCliente(c *gin.Context) {
	var patch models.ClientePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidatePatch(patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.repo.Patch(c.Request.Context(), c.Param("id"), patch); err != nil {
		ctl.fail(c, err, "error al actualizar cliente")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cliente parcialmente/actualizado!"})
}

func (ctl *ClienteController) DeleteCliente(c *gin.Context) {
	if err := ctl.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		ctl.fail(c, err, "error al eliminar cliente")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cliente eliminado!"})
}
