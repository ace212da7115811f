// Package fakeapi es un backend REST en memoria con las rutas, sobres de respuesta y errores
// que consume la consola. Lo usan los tests de punta a punta y cmd/devapi.
package fakeapi

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	pkgjwt "github.com/jhoicas/assettrack-console/pkg/jwt"
)

// Issuer emisor de los tokens firmados por el backend falso.
const Issuer = "assettrack-fakeapi"

// Account credencial de inicio de sesión sembrada.
type Account struct {
	ID       int64
	Username string
	Password string
	Role     string
}

// Cuentas sembradas.
var (
	Admin    = Account{ID: 1, Username: "admin", Password: "admin123", Role: "ADMIN"}
	Operator = Account{ID: 2, Username: "operator", Password: "operator123", Role: "OPERATOR"}
	Viewer   = Account{ID: 3, Username: "viewer", Password: "viewer123", Role: "VIEWER"}
)

type record = map[string]any

// shape envuelve una página de resultados como lo hace cada endpoint del backend real.
type shape func(items []record, total int) any

func springData(items []record, total int) any {
	return fiber.Map{"data": fiber.Map{"content": items, "totalElements": total}}
}

func spring(items []record, total int) any {
	return fiber.Map{"content": items, "totalElements": total}
}

func itemsTotal(items []record, total int) any {
	return fiber.Map{"items": items, "total": total}
}

func dataArray(items []record, total int) any {
	return fiber.Map{"data": items, "total": total}
}

func bareArray(items []record, _ int) any { return items }

type store struct {
	base      string
	key       string // "id" o "code"
	prefix    string // código asignado por el backend (PAL-001)
	dateField string
	shape     shape
	wrapItem  bool
	unique    []string
	items     map[string]record
	order     []string
	next      int64
}

func (s *store) put(rec record) string {
	id := fmt.Sprint(rec[s.key])
	if _, ok := s.items[id]; !ok {
		s.order = append(s.order, id)
	}
	s.items[id] = rec
	return id
}

func (s *store) assignKey(rec record) string {
	s.next++
	if s.prefix != "" {
		rec[s.key] = fmt.Sprintf("%s%03d", s.prefix, s.next)
	} else {
		rec[s.key] = s.next
	}
	return s.put(rec)
}

func (s *store) remove(id string) bool {
	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	for i, k := range s.order {
		if k == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *store) all() []record {
	out := make([]record, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, clone(s.items[id]))
	}
	return out
}

func (s *store) filter(keyword, status, from, to string) []record {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	out := make([]record, 0, len(s.order))
	for _, rec := range s.all() {
		if status != "" && !strings.EqualFold(fmt.Sprint(rec["status"]), status) {
			continue
		}
		if s.dateField != "" && (from != "" || to != "") {
			day := fmt.Sprint(rec[s.dateField])
			if len(day) >= 10 {
				day = day[:10]
			}
			if (from != "" && day < from) || (to != "" && day > to) {
				continue
			}
		}
		if keyword != "" && !matches(rec, keyword) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// conflict devuelve el campo repetido si otro registro ya tiene los mismos valores únicos.
func (s *store) conflict(rec record, self string) string {
	for _, field := range s.unique {
		v, ok := rec[field]
		if !ok {
			continue
		}
		want := strings.ToLower(fmt.Sprint(v))
		for id, other := range s.items {
			if id != self && strings.ToLower(fmt.Sprint(other[field])) == want {
				return field
			}
		}
	}
	return ""
}

func matches(rec record, keyword string) bool {
	for _, v := range rec {
		if s, ok := v.(string); ok && strings.Contains(strings.ToLower(s), keyword) {
			return true
		}
	}
	return false
}

func clone(rec record) record {
	out := make(record, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	return out
}

// Backend estado en memoria más la aplicación Fiber que lo expone.
type Backend struct {
	App *fiber.App

	mu       sync.Mutex
	secret   string
	accounts map[string]Account
	stores   map[string]*store
	calls    []string
	nextUser int64
}

// New construye el backend con datos sembrados. secret firma los tokens HS256.
func New(secret string) *Backend {
	if secret == "" {
		secret = "fakeapi-secret"
	}
	b := &Backend{
		secret:   secret,
		accounts: map[string]Account{},
		stores:   map[string]*store{},
	}
	b.seed()
	b.App = fiber.New(fiber.Config{AppName: "assettrack-fakeapi", DisableStartupMessage: true})
	b.routes()
	return b
}

// Calls devuelve "MÉTODO ruta" de cada petición recibida, en orden.
func (b *Backend) Calls() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.calls...)
}

// Record devuelve una copia del registro almacenado o nil.
func (b *Backend) Record(base, id string) map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.stores[base]
	if !ok {
		return nil
	}
	rec, ok := s.items[id]
	if !ok {
		return nil
	}
	return clone(rec)
}

// Token emite un token de acceso válido para la cuenta.
func (b *Backend) Token(a Account) (string, error) {
	return pkgjwt.Generate(b.secret, fmt.Sprint(a.ID), a.Username, a.Role, Issuer, time.Hour)
}

func (b *Backend) seed() {
	now := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	add := func(s *store, recs ...record) {
		for _, r := range recs {
			s.put(r)
		}
		s.next = int64(len(recs))
		b.stores[s.base] = s
	}

	add(&store{base: "/stacks", key: "id", shape: springData, unique: []string{"warehouse"}, items: map[string]record{}},
		record{"id": int64(1), "warehouse": "WH-A", "zone": "A1", "capacity": 20, "description": "Main aisle", "createdAt": now, "updatedAt": now},
		record{"id": int64(2), "warehouse": "WH-B", "zone": "B1", "capacity": 12, "description": "Cold storage", "createdAt": now, "updatedAt": now},
	)
	add(&store{base: "/pallets", key: "code", prefix: "PAL-", shape: spring, wrapItem: true, items: map[string]record{}},
		record{"code": "PAL-001", "stackId": int64(1), "location": "A1-01", "status": "STORED", "description": "Safety gear", "createdAt": now, "updatedAt": now},
		record{"code": "PAL-002", "stackId": int64(2), "location": "B1-04", "status": "AVAILABLE", "description": "Spare parts", "createdAt": now, "updatedAt": now},
	)
	add(&store{base: "/assets", key: "code", prefix: "AST-", dateField: "nextInspection", shape: itemsTotal, items: map[string]record{}},
		record{"code": "AST-001", "name": "Forklift", "serialNumber": "FL-9921", "categoryId": int64(1), "subCategoryId": int64(1),
			"assignedUserId": int64(2), "location": "WH-A", "status": "ACTIVE", "purchaseCost": "18500.00",
			"lastInspection": "2025-07-01", "nextInspection": "2026-01-01", "complianceDue": "2026-06-30"},
		record{"code": "AST-002", "name": "Fire extinguisher", "serialNumber": "FE-0042", "categoryId": int64(1), "subCategoryId": int64(2),
			"assignedUserId": int64(0), "location": "WH-B", "status": "IN_REPAIR", "purchaseCost": "120.50",
			"lastInspection": "2025-12-01", "nextInspection": "2026-12-01", "complianceDue": ""},
	)
	add(&store{base: "/movements", key: "id", dateField: "movedAt", shape: dataArray, wrapItem: true, items: map[string]record{}},
		record{"id": int64(1), "palletCode": "PAL-001", "fromStackId": int64(2), "toStackId": int64(1), "operator": "operator", "notes": "", "movedAt": now},
	)
	add(&store{base: "/users", key: "id", shape: springData, wrapItem: true, unique: []string{"username"}, items: map[string]record{}},
		record{"id": Admin.ID, "username": Admin.Username, "email": "admin@assettrack.test", "fullName": "Ada Admin", "roleId": int64(1), "roleName": "Administrator", "status": "ACTIVE"},
		record{"id": Operator.ID, "username": Operator.Username, "email": "operator@assettrack.test", "fullName": "Oscar Operator", "roleId": int64(2), "roleName": "Operator", "status": "ACTIVE"},
		record{"id": Viewer.ID, "username": Viewer.Username, "email": "viewer@assettrack.test", "fullName": "Vera Viewer", "roleId": int64(3), "roleName": "Viewer", "status": "ACTIVE"},
	)
	add(&store{base: "/roles", key: "id", shape: bareArray, unique: []string{"name"}, items: map[string]record{}},
		record{"id": int64(1), "name": "Administrator", "description": "Full access", "permissionIds": []int64{1, 2, 3}},
		record{"id": int64(2), "name": "Operator", "description": "Moves pallets", "permissionIds": []int64{1, 2}},
		record{"id": int64(3), "name": "Viewer", "description": "Read only", "permissionIds": []int64{1}},
	)
	add(&store{base: "/permissions", key: "id", shape: bareArray, unique: []string{"name"}, items: map[string]record{}},
		record{"id": int64(1), "name": "inventory.read", "description": "Read inventory"},
		record{"id": int64(2), "name": "inventory.move", "description": "Move pallets"},
		record{"id": int64(3), "name": "admin.users", "description": "Manage users"},
	)
	add(&store{base: "/categories", key: "id", shape: dataArray, unique: []string{"name"}, items: map[string]record{}},
		record{"id": int64(1), "name": "Safety", "description": "Safety equipment"},
		record{"id": int64(2), "name": "Machinery", "description": "Heavy machinery"},
	)
	add(&store{base: "/sub-categories", key: "id", shape: itemsTotal, items: map[string]record{}},
		record{"id": int64(1), "categoryId": int64(2), "categoryName": "Machinery", "name": "Forklifts", "description": "Lift trucks"},
		record{"id": int64(2), "categoryId": int64(1), "categoryName": "Safety", "name": "Extinguishers", "description": "Fire extinguishers"},
	)

	for _, a := range []Account{Admin, Operator, Viewer} {
		b.accounts[a.Username] = a
	}
	b.nextUser = int64(len(b.accounts))
}

func (b *Backend) routes() {
	b.App.Use(func(c *fiber.Ctx) error {
		b.mu.Lock()
		b.calls = append(b.calls, c.Method()+" "+c.Path())
		b.mu.Unlock()
		return c.Next()
	})

	b.App.Post("/auth/signin", b.signIn)
	b.App.Post("/auth/signup", b.signUp)

	api := b.App.Group("", b.requireToken)
	api.Get("/sub-categories/export", b.exportSubCategories)

	bases := make([]string, 0, len(b.stores))
	for base := range b.stores {
		bases = append(bases, base)
	}
	sort.Strings(bases)
	for _, base := range bases {
		s := b.stores[base]
		g := api.Group(base)
		g.Get("/search", b.search(s))
		g.Get("/all", b.listAll(s))
		g.Post("/create", b.create(s))
		g.Put("/update/:id", b.update(s))
		g.Get("/:id", b.get(s))
		g.Delete("/:id", b.remove(s))
	}
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}

func (b *Backend) requireToken(c *fiber.Ctx) error {
	tok := strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	if tok == "" {
		tok = c.Cookies("access_token")
	}
	if _, err := pkgjwt.Parse(b.secret, tok); err != nil {
		return fail(c, fiber.StatusUnauthorized, "Session expired")
	}
	return c.Next()
}

func (b *Backend) signIn(c *fiber.Ctx) error {
	var in struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Malformed request")
	}
	b.mu.Lock()
	a, ok := b.accounts[strings.ToLower(in.Username)]
	b.mu.Unlock()
	if !ok || a.Password != in.Password {
		return fail(c, fiber.StatusUnauthorized, "Bad credentials")
	}
	access, err := b.Token(a)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	refresh, err := pkgjwt.Generate(b.secret, fmt.Sprint(a.ID), a.Username, a.Role, Issuer, 24*time.Hour)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"accessToken": access, "refreshToken": refresh}})
}

func (b *Backend) signUp(c *fiber.Ctx) error {
	var in struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		FullName string `json:"fullName"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&in); err != nil || in.Username == "" || in.Password == "" {
		return fail(c, fiber.StatusBadRequest, "Username and password are required")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	name := strings.ToLower(in.Username)
	if _, taken := b.accounts[name]; taken {
		return fail(c, fiber.StatusConflict, "Username already taken")
	}
	users := b.stores["/users"]
	rec := record{"username": name, "email": in.Email, "fullName": in.FullName, "roleId": int64(3), "roleName": "Viewer", "status": "ACTIVE"}
	users.assignKey(rec)
	b.accounts[name] = Account{ID: rec["id"].(int64), Username: name, Password: in.Password, Role: "VIEWER"}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": rec})
}

func (b *Backend) search(s *store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := c.QueryInt("page", 0)
		size := c.QueryInt("size", 10)
		if page < 0 || size <= 0 {
			return fail(c, fiber.StatusBadRequest, "Invalid pagination")
		}
		b.mu.Lock()
		matched := s.filter(c.Query("keyword"), c.Query("status"), c.Query("from"), c.Query("to"))
		b.mu.Unlock()
		total := len(matched)
		start := page * size
		if start > total {
			start = total
		}
		end := start + size
		if end > total {
			end = total
		}
		return c.JSON(s.shape(matched[start:end], total))
	}
}

func (b *Backend) listAll(s *store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		b.mu.Lock()
		items := s.all()
		b.mu.Unlock()
		return c.JSON(fiber.Map{"data": items})
	}
}

func (b *Backend) get(s *store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		b.mu.Lock()
		rec, ok := s.items[c.Params("id")]
		if ok {
			rec = clone(rec)
		}
		b.mu.Unlock()
		if !ok {
			return fail(c, fiber.StatusNotFound, "Record not found")
		}
		return b.item(c, s, fiber.StatusOK, rec)
	}
}

func (b *Backend) create(s *store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rec := record{}
		if err := c.BodyParser(&rec); err != nil {
			return fail(c, fiber.StatusBadRequest, "Malformed request")
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		if field := s.conflict(rec, ""); field != "" {
			return fail(c, fiber.StatusConflict, fmt.Sprintf("A record with that %s already exists", field))
		}
		if !b.applyMovement(s, rec) {
			return fail(c, fiber.StatusNotFound, fmt.Sprintf("Pallet %v not found", rec["palletCode"]))
		}
		stamp(s, rec, true)
		s.assignKey(rec)
		return b.item(c, s, fiber.StatusCreated, clone(rec))
	}
}

func (b *Backend) update(s *store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		patch := record{}
		if err := c.BodyParser(&patch); err != nil {
			return fail(c, fiber.StatusBadRequest, "Malformed request")
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		rec, ok := s.items[id]
		if !ok {
			return fail(c, fiber.StatusNotFound, "Record not found")
		}
		if field := s.conflict(patch, id); field != "" {
			return fail(c, fiber.StatusConflict, fmt.Sprintf("A record with that %s already exists", field))
		}
		for k, v := range patch {
			if k != s.key {
				rec[k] = v
			}
		}
		stamp(s, rec, false)
		return b.item(c, s, fiber.StatusOK, clone(rec))
	}
}

func (b *Backend) remove(s *store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		b.mu.Lock()
		ok := s.remove(c.Params("id"))
		b.mu.Unlock()
		if !ok {
			return fail(c, fiber.StatusNotFound, "Record not found")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func (b *Backend) item(c *fiber.Ctx, s *store, status int, rec record) error {
	if s.wrapItem {
		return c.Status(status).JSON(fiber.Map{"data": rec})
	}
	return c.Status(status).JSON(rec)
}

// applyMovement mueve el pallet al stack destino al registrar un movimiento.
// Devuelve false si el pallet no existe.
func (b *Backend) applyMovement(s *store, rec record) bool {
	if s.base != "/movements" {
		return true
	}
	pallet, ok := b.stores["/pallets"].items[fmt.Sprint(rec["palletCode"])]
	if !ok {
		return false
	}
	pallet["stackId"] = rec["toStackId"]
	pallet["status"] = "IN_TRANSIT"
	rec["movedAt"] = time.Now().UTC()
	return true
}

func stamp(s *store, rec record, created bool) {
	switch s.base {
	case "/stacks", "/pallets":
		now := time.Now().UTC()
		if created {
			rec["createdAt"] = now
		}
		rec["updatedAt"] = now
	}
}

func (b *Backend) exportSubCategories(c *fiber.Ctx) error {
	b.mu.Lock()
	items := b.stores["/sub-categories"].all()
	b.mu.Unlock()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"id", "category", "name", "description"})
	for _, rec := range items {
		_ = w.Write([]string{fmt.Sprint(rec["id"]), fmt.Sprint(rec["categoryName"]), fmt.Sprint(rec["name"]), fmt.Sprint(rec["description"])})
	}
	w.Flush()
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Send(buf.Bytes())
}
