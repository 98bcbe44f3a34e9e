package session

// Session 请求级存储会话
// 设计说明:
// 1. 由接口层在请求开始时获取、请求结束时释放(包括panic路径)
// 2. 同一请求内的所有仓储调用显式传入同一个会话
// 3. domain层只依赖这个接口,具体实现(独占的数据库连接)在infrastructure层
type Session interface {
	// Release 归还会话占用的资源,可重复调用
	Release() error
}
