package database

import "context"

func (d *Database) GetSetting(ctx context.Context, key string) (string, bool) {
	type settingResult struct {
		value string
		ok    bool
	}
	result, _ := withDBContextResult(d, ctx, func(ctx context.Context) (settingResult, error) {
		var value *string
		if err := d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value); err != nil {
			return settingResult{}, err
		}
		if value == nil {
			return settingResult{}, nil
		}
		return settingResult{value: *value, ok: true}, nil
	})
	return result.value, result.ok
}

func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, value)
		return wrapErr(EntitySetting, "set", key, err)
	})
}
