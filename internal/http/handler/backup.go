package handler

import (
	"path"
	"time"

	"github.com/gofiber/fiber/v2"

	"tenantconsole/internal/model"
	"tenantconsole/internal/service"
)

const (
	backupNotFound = "backup not found"
	// maxLinkExpiry caps presigned artifact links.
	maxLinkExpiry = 7 * 24 * time.Hour
)

type quickBackupRequest struct {
	Table        string `json:"table"`
	IncludeCloud *bool  `json:"include_cloud,omitempty"`
	IncludeLocal *bool  `json:"include_local,omitempty"`
}

type restoreRequest struct {
	Confirm string `json:"confirm"`
}

// ListBackups returns backup records, newest first.
//
// @Summary  List backups
// @Tags     backups
// @Produce  json
// @Param    client_id query string false "only backups containing this client's rows"
// @Success  200 {array}  model.BackupRecord
// @Failure  500 {object} errorPayload
// @Router   /api/v1/backups [get]
func ListBackups(svc service.BackupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext(), c.Query("client_id"))
		if err != nil {
			return writeServiceError(c, err, backupNotFound)
		}
		return c.JSON(items)
	}
}

// GetBackup returns one backup record.
//
// @Summary  Get backup
// @Tags     backups
// @Produce  json
// @Param    id  path     string true "backup id"
// @Success  200 {object} model.BackupRecord
// @Failure  404 {object} errorPayload
// @Router   /api/v1/backups/{id} [get]
func GetBackup(svc service.BackupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		b, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err, backupNotFound)
		}
		return c.JSON(b)
	}
}

// CreateBackup snapshots the requested tables.
//
// @Summary  Create backup
// @Tags     backups
// @Accept   json
// @Produce  json
// @Param    body body     model.BackupOptions true "backup options"
// @Success  201  {object} service.BackupResult
// @Failure  400  {object} errorPayload
// @Router   /api/v1/backups [post]
func CreateBackup(svc service.BackupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var opts model.BackupOptions
		if err := c.BodyParser(&opts); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		res, err := svc.Create(c.UserContext(), opts)
		if err != nil {
			return writeServiceError(c, err, backupNotFound)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// QuickBackup takes a full backup of one table.
//
// @Summary  Quick backup
// @Tags     backups
// @Accept   json
// @Produce  json
// @Param    body body     quickBackupRequest true "table and targets"
// @Success  201  {object} service.BackupResult
// @Failure  400  {object} errorPayload
// @Router   /api/v1/backups/quick [post]
func QuickBackup(svc service.BackupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req quickBackupRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		cloud, local := true, false
		if req.IncludeCloud != nil {
			cloud = *req.IncludeCloud
		}
		if req.IncludeLocal != nil {
			local = *req.IncludeLocal
		}
		res, err := svc.QuickBackup(c.UserContext(), req.Table, cloud, local)
		if err != nil {
			return writeServiceError(c, err, backupNotFound)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// RestoreBackup writes a completed backup's rows back. The confirm field
// must equal the backup's table name.
//
// @Summary  Restore backup
// @Tags     backups
// @Accept   json
// @Produce  json
// @Param    id   path string         true "backup id"
// @Param    body body restoreRequest true "confirmation"
// @Success  200  {object} map[string]string
// @Failure  404  {object} errorPayload
// @Failure  422  {object} errorPayload
// @Router   /api/v1/backups/{id}/restore [post]
func RestoreBackup(svc service.BackupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req restoreRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if err := svc.Restore(c.UserContext(), c.Params("id"), req.Confirm); err != nil {
			return writeServiceError(c, err, backupNotFound)
		}
		return c.JSON(fiber.Map{"status": model.StatusCompleted})
	}
}

// DeleteBackup removes a backup record and its stored artifacts.
//
// @Summary  Delete backup
// @Tags     backups
// @Param    id path string true "backup id"
// @Success  204
// @Failure  404 {object} errorPayload
// @Router   /api/v1/backups/{id} [delete]
func DeleteBackup(svc service.BackupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return writeServiceError(c, err, backupNotFound)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// PruneBackups deletes backups past their expiry.
//
// @Summary  Prune expired backups
// @Tags     backups
// @Produce  json
// @Success  200 {object} map[string]int
// @Router   /api/v1/backups/prune [post]
func PruneBackups(svc service.BackupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := svc.PruneExpired(c.UserContext())
		if err != nil {
			return writeInternal(c, err)
		}
		return c.JSON(fiber.Map{"pruned": n})
	}
}

// DownloadArtifact streams one stored file of a backup.
//
// @Summary  Download backup file
// @Tags     backups
// @Produce  octet-stream
// @Param    id  path  string true "backup id"
// @Param    key query string true "file key from file_paths"
// @Success  200
// @Failure  404 {object} errorPayload
// @Router   /api/v1/backups/{id}/files [get]
func DownloadArtifact(svc service.BackupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Query("key")
		if key == "" {
			return writeError(c, fiber.StatusBadRequest, "KEY_REQUIRED", "key is required")
		}
		rc, info, err := svc.OpenArtifact(c.UserContext(), c.Params("id"), key)
		if err != nil {
			return writeServiceError(c, err, "backup file not found")
		}
		c.Attachment(path.Base(key))
		if info.ContentType != "" {
			c.Set(fiber.HeaderContentType, info.ContentType)
		}
		size := -1
		if info.Size > 0 {
			size = int(info.Size)
		}
		// fasthttp closes rc once the body is written.
		return c.Status(fiber.StatusOK).SendStream(rc, size)
	}
}

// ArtifactLink returns a presigned URL for one stored file of a backup.
//
// @Summary  Backup file link
// @Tags     backups
// @Produce  json
// @Param    id     path  string true  "backup id"
// @Param    key    query string true  "file key from file_paths"
// @Param    expiry query string false "link lifetime, e.g. 15m (default 1h)"
// @Success  200 {object} map[string]string
// @Failure  400 {object} errorPayload
// @Router   /api/v1/backups/{id}/link [get]
func ArtifactLink(svc service.BackupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Query("key")
		if key == "" {
			return writeError(c, fiber.StatusBadRequest, "KEY_REQUIRED", "key is required")
		}
		expiry := time.Hour
		if v := c.Query("expiry"); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil || d <= 0 || d > maxLinkExpiry {
				return writeError(c, fiber.StatusBadRequest, "INVALID_EXPIRY", "expiry must be a duration up to 168h")
			}
			expiry = d
		}
		url, err := svc.ArtifactURL(c.UserContext(), c.Params("id"), key, expiry)
		if err != nil {
			return writeServiceError(c, err, "backup file not found")
		}
		return c.JSON(fiber.Map{"url": url, "expires_in": expiry.String()})
	}
}
