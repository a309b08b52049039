package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/fleet-manager/backend/internal/application/usecase/auth"
	"github.com/fleet-manager/backend/internal/application/usecase/cashdesk"
	"github.com/fleet-manager/backend/internal/application/usecase/entry"
	"github.com/fleet-manager/backend/internal/application/usecase/expense"
	"github.com/fleet-manager/backend/internal/application/usecase/maintenance"
	"github.com/fleet-manager/backend/internal/application/usecase/message"
	"github.com/fleet-manager/backend/internal/application/usecase/notification"
	"github.com/fleet-manager/backend/internal/application/usecase/periodclose"
	"github.com/fleet-manager/backend/internal/application/usecase/report"
	"github.com/fleet-manager/backend/internal/application/usecase/vehicle"
	"github.com/fleet-manager/backend/internal/domain/valueobject"
	"github.com/fleet-manager/backend/internal/infra/server/router"
	"github.com/fleet-manager/backend/internal/integration/adapters"
	"github.com/fleet-manager/backend/internal/integration/entrypoint/controller"
	"github.com/fleet-manager/backend/internal/integration/entrypoint/middleware"
	"github.com/fleet-manager/backend/internal/integration/persistence"
	"github.com/fleet-manager/backend/internal/integration/persistence/model"
	"github.com/fleet-manager/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri            string
	headers        map[string]string
	client         *http.Client
	response       *response
	db             *mock.Db
	serverPort     int
	accessToken    string
	currentUserID  uuid.UUID
	currentDeskID  uuid.UUID
	vehicleID      uuid.UUID
	entryID        uuid.UUID
	notificationID uuid.UUID
	lastID         uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb("fleet_manager", map[string]any{
			"users":               &model.UserModel{},
			"vehicles":            &model.VehicleModel{},
			"maintenance_configs": &model.MaintenanceConfigModel{},
			"financial_entries":   &model.EntryModel{},
			"global_expenses":     &model.GlobalExpenseModel{},
			"cash_desks":          &model.CashDeskModel{},
			"notifications":       &model.NotificationModel{},
			"historical_stats":    &model.HistoricalStatsModel{},
			"messages":            &model.MessageModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^an admin exists with email "([^"]*)" and password "([^"]*)"$`, test.anAdminExistsWithEmailAndPassword)
	ctx.Given(`^an agent exists with email "([^"]*)" and password "([^"]*)"$`, test.anAgentExistsWithEmailAndPassword)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)

	// Fleet setup steps
	ctx.Given(`^a vehicle "([^"]*)" exists with mileage (\d+)$`, test.aVehicleExistsWithMileage)
	ctx.Given(`^the vehicle has a "([^"]*)" maintenance config every (\d+) km due at (\d+) km$`, test.theVehicleHasAMaintenanceConfig)
	ctx.Given(`^a maintenance alert exists for the vehicle$`, test.aMaintenanceAlertExistsForTheVehicle)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.currentUserID = uuid.Nil
	t.currentDeskID = uuid.Nil
	t.vehicleID = uuid.Nil
	t.entryID = uuid.Nil
	t.notificationID = uuid.Nil
	t.lastID = uuid.Nil
	t.response = nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			reportCache := adapters.NewReportCache(mock.NewRedis())
			go reportCache.ListenForChanges(context.Background())

			// Repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			vehicleRepo := persistence.NewVehicleRepository(testDB.DbConn, reportCache)
			entryRepo := persistence.NewEntryRepository(testDB.DbConn, reportCache)
			expenseRepo := persistence.NewGlobalExpenseRepository(testDB.DbConn, reportCache)
			cashDeskRepo := persistence.NewCashDeskRepository(testDB.DbConn, reportCache)
			notificationRepo := persistence.NewNotificationRepository(testDB.DbConn, reportCache)
			statsRepo := persistence.NewHistoricalStatsRepository(testDB.DbConn)
			messageRepo := persistence.NewMessageRepository(testDB.DbConn, reportCache)

			// Services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, time.Hour)
			alertSender := adapters.NewNoopAlertSender()
			registry := valueobject.NewMaintenanceTypeRegistry(valueobject.DefaultMaintenanceTypes...)

			// Use cases
			trackerUseCase := maintenance.NewEvaluateAlertsUseCase(vehicleRepo, entryRepo, notificationRepo, alertSender)
			postponeUseCase := maintenance.NewPostponeMaintenanceUseCase(vehicleRepo)

			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
			registerUseCase := auth.NewRegisterUserUseCase(userRepo, cashDeskRepo, passwordService)
			listUsersUseCase := auth.NewListUsersUseCase(userRepo)
			deactivateUseCase := auth.NewDeactivateUserUseCase(userRepo)

			createVehicleUseCase := vehicle.NewCreateVehicleUseCase(vehicleRepo, registry)
			listVehiclesUseCase := vehicle.NewListVehiclesUseCase(vehicleRepo)
			updateMileageUseCase := vehicle.NewUpdateMileageUseCase(vehicleRepo, trackerUseCase)
			archiveVehicleUseCase := vehicle.NewArchiveVehicleUseCase(vehicleRepo)
			simulateResaleUseCase := vehicle.NewSimulateResaleUseCase(vehicleRepo)
			addConfigUseCase := vehicle.NewAddMaintenanceConfigUseCase(vehicleRepo, registry)

			createEntryUseCase := entry.NewCreateEntryUseCase(entryRepo, vehicleRepo, cashDeskRepo, notificationRepo, registry, trackerUseCase)
			listEntriesUseCase := entry.NewListEntriesUseCase(entryRepo)
			updateEntryUseCase := entry.NewUpdateEntryUseCase(entryRepo)
			approveEntryUseCase := entry.NewApproveEntryUseCase(entryRepo, vehicleRepo, notificationRepo)
			rejectEntryUseCase := entry.NewRejectEntryUseCase(entryRepo)
			deleteEntryUseCase := entry.NewDeleteEntryUseCase(entryRepo, cashDeskRepo)

			createExpenseUseCase := expense.NewCreateGlobalExpenseUseCase(expenseRepo, cashDeskRepo)
			listExpensesUseCase := expense.NewListGlobalExpensesUseCase(expenseRepo)
			deleteExpenseUseCase := expense.NewDeleteGlobalExpenseUseCase(expenseRepo, cashDeskRepo)

			listDesksUseCase := cashdesk.NewListCashDesksUseCase(cashDeskRepo, userRepo)

			listNotificationsUseCase := notification.NewListNotificationsUseCase(notificationRepo)
			archiveNotificationUseCase := notification.NewArchiveNotificationUseCase(notificationRepo)

			getReportUseCase := report.NewGetReportUseCase(entryRepo, expenseRepo, vehicleRepo, cashDeskRepo, statsRepo, reportCache)
			exportUseCase := report.NewExportDataUseCase(vehicleRepo, entryRepo, expenseRepo, userRepo, notificationRepo, cashDeskRepo)

			sendMessageUseCase := message.NewSendMessageUseCase(messageRepo)
			listMessagesUseCase := message.NewListMessagesUseCase(messageRepo)

			closePeriodUseCase := periodclose.NewClosePeriodUseCase(
				getReportUseCase,
				statsRepo,
				userRepo,
				entryRepo,
				expenseRepo,
				notificationRepo,
				messageRepo,
				reportCache,
			)

			// Controllers and middleware
			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			})
			authController := controller.NewAuthController(loginUseCase, registerUseCase, listUsersUseCase, deactivateUseCase)
			vehicleController := controller.NewVehicleController(
				createVehicleUseCase,
				listVehiclesUseCase,
				updateMileageUseCase,
				archiveVehicleUseCase,
				simulateResaleUseCase,
				addConfigUseCase,
				postponeUseCase,
			)
			entryController := controller.NewEntryController(
				createEntryUseCase,
				listEntriesUseCase,
				updateEntryUseCase,
				approveEntryUseCase,
				rejectEntryUseCase,
				deleteEntryUseCase,
			)
			expenseController := controller.NewExpenseController(createExpenseUseCase, listExpensesUseCase, deleteExpenseUseCase)
			cashDeskController := controller.NewCashDeskController(listDesksUseCase)
			notificationController := controller.NewNotificationController(listNotificationsUseCase, archiveNotificationUseCase)
			reportController := controller.NewReportController(getReportUseCase, exportUseCase)
			messageController := controller.NewMessageController(sendMessageUseCase, listMessagesUseCase)
			adminController := controller.NewAdminController(closePeriodUseCase)

			loginRateLimiter := middleware.NewRateLimiter()
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(
				healthController,
				authController,
				vehicleController,
				entryController,
				expenseController,
				cashDeskController,
				notificationController,
				reportController,
				messageController,
				adminController,
				loginRateLimiter,
				authMiddleware,
			)
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) anAdminExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test Admin", "admin")
}

func (t *testContext) anAgentExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test Agent", "agent")
}

func (t *testContext) createUser(email, password, name, role string) error {
	userID := uuid.New()
	t.currentUserID = userID

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		Name:         name,
		PasswordHash: hashPassword(password),
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := t.db.DbConn.Create(user).Error; err != nil {
		return err
	}

	// Every account carries a personal cash desk, mirroring registration.
	deskID := uuid.New()
	t.currentDeskID = deskID
	desk := &model.CashDeskModel{
		ID:        deskID,
		UserID:    userID,
		Balance:   decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return t.db.DbConn.Create(desk).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

// iAmLoggedInAs signs an access token for the given user directly, so
// scenarios do not have to go through the login endpoint each time.
func (t *testContext) iAmLoggedInAs(email string) error {
	var user model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&user).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}
	t.currentUserID = user.ID

	var desk model.CashDeskModel
	if err := t.db.DbConn.Where("user_id = ?", user.ID).First(&desk).Error; err == nil {
		t.currentDeskID = desk.ID
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"email":   user.Email,
		"name":    user.Name,
		"role":    user.Role,
		"exp":     jwt.NewNumericDate(now.Add(time.Hour)),
		"iat":     jwt.NewNumericDate(now),
		"sub":     user.ID.String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = signed
	return nil
}

func (t *testContext) aVehicleExistsWithMileage(name string, mileage int) error {
	vehicleID := uuid.New()
	t.vehicleID = vehicleID

	now := time.Now().UTC()
	v := &model.VehicleModel{
		ID:               vehicleID,
		Name:             name,
		Plate:            "TEST-" + vehicleID.String()[:8],
		PurchasePrice:    decimal.NewFromInt(80000),
		RegistrationDate: now.AddDate(0, -6, 0),
		LastMileage:      mileage,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	return t.db.DbConn.Create(v).Error
}

func (t *testContext) theVehicleHasAMaintenanceConfig(maintenanceType string, intervalKm, nextDueKm int) error {
	if t.vehicleID == uuid.Nil {
		return errors.New("no vehicle created yet")
	}

	now := time.Now().UTC()
	cfg := &model.MaintenanceConfigModel{
		ID:              uuid.New(),
		VehicleID:       t.vehicleID,
		Type:            maintenanceType,
		IntervalKm:      intervalKm,
		NextDueKm:       nextDueKm,
		LastPerformedKm: nextDueKm - intervalKm,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return t.db.DbConn.Create(cfg).Error
}

func (t *testContext) aMaintenanceAlertExistsForTheVehicle() error {
	if t.vehicleID == uuid.Nil {
		return errors.New("no vehicle created yet")
	}

	notificationID := uuid.New()
	t.notificationID = notificationID

	vehicleID := t.vehicleID
	now := time.Now().UTC()
	n := &model.NotificationModel{
		ID:              notificationID,
		Kind:            "MAINTENANCE_DUE",
		VehicleID:       &vehicleID,
		VehicleName:     "Test vehicle",
		MaintenanceType: "Vidange",
		DueKm:           50000,
		KmLeft:          400,
		Message:         "Vidange due in 400 km",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return t.db.DbConn.Create(n).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		content := t.replacePlaceholders(body.Content)
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{user_id}}", t.currentUserID.String())
	content = strings.ReplaceAll(content, "{{cash_desk_id}}", t.currentDeskID.String())
	content = strings.ReplaceAll(content, "{{vehicle_id}}", t.vehicleID.String())
	content = strings.ReplaceAll(content, "{{entry_id}}", t.entryID.String())
	content = strings.ReplaceAll(content, "{{notification_id}}", t.notificationID.String())
	content = strings.ReplaceAll(content, "{{last_id}}", t.lastID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody
		t.captureIDs(responseBody)
	}

	return nil
}

// captureIDs records ids from create responses so later steps can
// reference them through placeholders.
func (t *testContext) captureIDs(body map[string]any) {
	if token, ok := body["token"].(string); ok && token != "" {
		t.accessToken = token
	}

	idStr, ok := body["id"].(string)
	if !ok {
		return
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return
	}

	t.lastID = id
	if _, isVehicle := body["maintenance_configs"]; isVehicle {
		t.vehicleID = id
	} else if _, isEntry := body["status"]; isEntry {
		t.entryID = id
	}
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	criteriaJSON := t.replacePlaceholders(content.Content)

	var criteria map[string]any
	if err := json.Unmarshal([]byte(criteriaJSON), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
