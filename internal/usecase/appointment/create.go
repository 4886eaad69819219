package appointment

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/ShineWorks01/detailing-scheduler/internal/audit"
	domain "github.com/ShineWorks01/detailing-scheduler/internal/domain/scheduling"
	"github.com/ShineWorks01/detailing-scheduler/internal/httperr"
	"github.com/ShineWorks01/detailing-scheduler/internal/models"
	"github.com/ShineWorks01/detailing-scheduler/internal/timezone"
	"github.com/ShineWorks01/detailing-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	CustomerID    *uint
	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	VehicleMake  string
	VehicleModel string
	VehicleYear  int
	VehiclePlate string
	VehicleInfo  string

	PackageID uint

	Date  string // YYYY-MM-DD
	Time  string // HH:mm
	Notes string

	Origin string

	// Pagamento já resolvido fora (ex.: walk-in pago na hora)
	PaymentStatus string
	PaymentMethod string
	StaffID       *uint
}

// JobHook é o gancho pós-persistência que dispara a criação idempotente
// do job (ver usecase/job.EnsureJob).
type JobHook interface {
	Execute(ctx context.Context, appointmentID uint) (*models.Job, bool, error)
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	jobs     JobHook
	settings domain.Settings
	tz       string
}

func NewCreateAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	jobs JobHook,
	settings domain.Settings,
	tz string,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		audit:    auditDispatcher,
		jobs:     jobs,
		settings: settings,
		tz:       tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Campos obrigatórios
	// --------------------------------------------------
	if in.CustomerName == "" {
		return nil, httperr.ErrField("missing_field", "customer_name")
	}
	if in.VehiclePlate == "" && in.VehicleInfo == "" {
		return nil, httperr.ErrField("missing_field", "vehicle")
	}
	if in.PackageID == 0 {
		return nil, httperr.ErrField("missing_field", "package_id")
	}
	if in.Date == "" || in.Time == "" {
		return nil, httperr.ErrField("missing_field", "date_time")
	}

	if in.VehiclePlate != "" {
		if !validators.IsPlateValid(in.VehiclePlate) {
			return nil, httperr.ErrField("invalid_request", "vehicle_plate")
		}
		in.VehiclePlate = validators.NormalizePlate(in.VehiclePlate)
	}

	// --------------------------------------------------
	// 2️⃣ Data / hora no timezone da loja
	// --------------------------------------------------
	start, err := timezone.ParseDateTimeIn(uc.tz, in.Date, in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 3️⃣ Antecedência mínima (validação duplicada de propósito —
	//    a listagem de slots já filtra, mas o cliente pode postar direto)
	// --------------------------------------------------
	now := timezone.NowIn(uc.tz)
	if err := CheckLeadTime(start, now, uc.settings.MinLeadTime); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Pacote de serviço
	// --------------------------------------------------
	pkg, err := uc.repo.GetServicePackage(ctx, in.PackageID)
	if err != nil {
		return nil, httperr.ErrBusiness("package_not_found")
	}
	if !pkg.Active {
		return nil, httperr.ErrBusiness("package_inactive")
	}

	end := start.Add(time.Duration(pkg.DurationMin) * time.Minute)

	// --------------------------------------------------
	// 5️⃣ Cliente (get or create — walk-in pode ficar sem cadastro)
	// --------------------------------------------------
	customerID := in.CustomerID
	if customerID == nil && in.Origin != domain.OriginWalkIn && in.CustomerPhone != "" {
		customer, err := uc.repo.GetOrCreateCustomer(
			ctx,
			in.CustomerName,
			in.CustomerPhone,
			in.CustomerEmail,
		)
		if err != nil {
			return nil, err
		}
		customerID = &customer.ID
	}

	// --------------------------------------------------
	// 6️⃣ Pagamento inicial
	// --------------------------------------------------
	payment := models.Payment{
		Amount: pkg.Price,
		Status: string(domain.PaymentPending),
		Method: in.PaymentMethod,
	}
	if in.PaymentStatus == string(domain.PaymentCompleted) {
		payment.Status = string(domain.PaymentCompleted)
		payment.TransactionID = uuid.NewString()
	}

	origin := in.Origin
	if origin == "" {
		origin = domain.OriginOnline
	}

	ap := &models.Appointment{
		CustomerID:    customerID,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		CustomerEmail: in.CustomerEmail,

		VehicleMake:  in.VehicleMake,
		VehicleModel: in.VehicleModel,
		VehicleYear:  in.VehicleYear,
		VehiclePlate: in.VehiclePlate,
		VehicleInfo:  in.VehicleInfo,

		ServicePackageID: pkg.ID,
		StartTime:        start,
		EndTime:          end,
		Status:           string(domain.StatusConfirmed),
		Payment:          payment,
		Notes:            in.Notes,
		Origin:           origin,
	}

	// --------------------------------------------------
	// 7️⃣ Alocação de baia + criação (transacional, com lock)
	// --------------------------------------------------
	if err := uc.repo.CreateWithBayAllocation(ctx, ap, uc.settings.BayCount); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 8️⃣ Hook pós-persistência: criação idempotente do job.
	//    Falha aqui não desfaz o agendamento — o hook refaz a checagem
	//    na próxima atualização de pagamento/status.
	// --------------------------------------------------
	if uc.jobs != nil {
		if _, _, err := uc.jobs.Execute(ctx, ap.ID); err != nil {
			log.Println("job hook failed for appointment", ap.ID, ":", err)
		}
	}

	// --------------------------------------------------
	// 9️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   in.StaffID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
