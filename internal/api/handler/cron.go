package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/poconverto/analytics-engine-api/internal/domain"
	"github.com/poconverto/analytics-engine-api/internal/scheduler"
	"github.com/poconverto/analytics-engine-api/pkg/apiErrors"
	"github.com/poconverto/analytics-engine-api/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSnapshots = "snapshots"
	CronJobTypeHealth    = "health"
	CronJobTypeAll       = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	SnapshotSyncService  *scheduler.SnapshotSyncService
	HealthMonitorService *scheduler.HealthMonitorService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Verificar permissões - apenas administradores podem executar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		// Validar o tipo de cron job
		switch cronType {
		case CronJobTypeSnapshots:
			// Executar sincronização de snapshots
			if services.SnapshotSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de snapshots não disponível", nil)
				return
			}
			services.SnapshotSyncService.TriggerManualSync()

		case CronJobTypeHealth:
			// Executar ciclo de monitoramento de saúde
			if services.HealthMonitorService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de monitoramento de saúde não disponível", nil)
				return
			}
			services.HealthMonitorService.TriggerManualCycle()

		case CronJobTypeAll:
			// Executar todas as rotinas
			if services.SnapshotSyncService != nil {
				services.SnapshotSyncService.TriggerManualSync()
			}
			if services.HealthMonitorService != nil {
				services.HealthMonitorService.TriggerManualCycle()
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: snapshots, health, all", nil)
			return
		}

		// Responder com sucesso
		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		// Verificar permissões - apenas administradores podem ver status das crons
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			"snapshots": services.SnapshotSyncService.GetStatus(),
			"health":    services.HealthMonitorService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
